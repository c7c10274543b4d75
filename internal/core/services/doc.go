// Package services implements the driving ports.
//
// TransformService is the pipeline orchestrator: it validates requests,
// sequences the enabled transformers in fixed order and pairs the
// result with before/after metrics. It holds no state between requests.
package services
