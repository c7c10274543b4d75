package wordlists

import "github.com/custodia-labs/rephrase-cli/internal/core/ports/driven"

// Defaults returns the built-in word pools.
// The tables are Korean-first with a small latin set; users can extend
// or replace them through a TOML override file (see Store).
func Defaults() *driven.Wordlists {
	return &driven.Wordlists{
		ConnectorVariants: map[string][]string{
			// Korean connectors and discourse markers.
			"그러나":   {"하지만", "그렇지만", "그런데", "반면에", "한편"},
			"하지만":   {"그러나", "그렇지만", "근데", "다만"},
			"그리고":   {"또한", "게다가", "더불어", "아울러", "그뿐만 아니라"},
			"또한":    {"그리고", "게다가", "뿐만 아니라", "더불어"},
			"따라서":   {"그래서", "그러므로", "결국", "이로 인해", "이에 따라"},
			"그래서":   {"따라서", "그러므로", "결과적으로", "그 결과"},
			"왜냐하면":  {"그 이유는", "이유는"},
			"예를 들어": {"예컨대", "가령", "이를테면", "구체적으로"},
			"즉":     {"다시 말해", "바꿔 말하면", "달리 말하면", "요컨대"},
			"물론":    {"당연히", "분명히", "확실히", "사실"},

			// Latin connectors.
			"however":     {"nevertheless", "nonetheless", "yet", "still"},
			"therefore":   {"consequently", "thus", "hence", "as a result"},
			"moreover":    {"furthermore", "in addition", "besides", "what is more"},
			"for example": {"for instance", "to illustrate", "as an example"},
		},

		DiscourseMarkers: []string{
			"사실", "물론", "솔직히", "확실히", "분명히",
			"아무래도", "어쨌든", "결국", "실제로", "정말로",
			"admittedly", "frankly", "arguably",
		},

		Transitions: []string{
			"흥미롭게도", "생각해보면", "한 가지 덧붙이자면", "여기서 잠깐",
			"다른 관점에서 보면", "사족을 붙이자면", "덧붙여 말하자면",
			"개인적으로는", "솔직히 말해서", "어쩌면",
		},

		Parentheticals: []string{
			"(물론 이건 한 가지 관점일 뿐이지만)",
			"(정확히 말하자면)",
			"(다소 과장된 표현이긴 하지만)",
			"(이 부분은 논쟁의 여지가 있으나)",
			"(일반화하기는 어렵지만)",
		},

		RareSynonyms: map[string][]string{
			"중요하다": {"긴요하다", "핵심적이다", "지대하다"},
			"생각하다": {"사료하다", "헤아리다", "가늠하다"},
			"많다":   {"다수이다", "비일비재하다", "허다하다"},
			"좋다":   {"양호하다", "긍정적이다", "바람직하다"},
			"나쁘다":  {"부정적이다", "미흡하다", "난점이 있다"},
			"어렵다":  {"난해하다", "용이하지 않다", "만만치 않다"},
			"쉽다":   {"수월하다", "용이하다", "간편하다"},
		},
	}
}
