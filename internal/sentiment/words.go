package sentiment

// Weighted word lists derived from financial sentiment dictionaries
// (Loughran-McDonald style), with market-slang additions. Weights express
// how strong a signal a single occurrence carries.

func loadBullishWords() map[string]float64 {
	return map[string]float64{
		// strong moves
		"surge": 1.0, "surges": 1.0, "surging": 1.0,
		"soar": 1.0, "soars": 1.0, "soaring": 1.0,
		"skyrocket": 1.0, "skyrockets": 1.0,
		"rally": 0.9, "rallies": 0.9, "rallying": 0.9,
		"boom": 0.9, "booming": 0.9,
		"breakout": 0.8, "breakthrough": 0.9,

		// performance
		"gain": 0.7, "gains": 0.7, "gaining": 0.7,
		"jump": 0.7, "jumps": 0.7, "jumping": 0.7,
		"climb": 0.6, "climbs": 0.6, "climbing": 0.6,
		"rise": 0.6, "rises": 0.6, "rising": 0.6,
		"advance": 0.6, "advances": 0.6,
		"rebound": 0.6, "rebounds": 0.6, "recovery": 0.7,
		"higher": 0.5, "record": 0.6, "growth": 0.7, "grew": 0.6,

		// outlook
		"bullish": 0.9, "optimistic": 0.8, "optimism": 0.8,
		"upbeat": 0.7, "positive": 0.6, "robust": 0.7,
		"strong": 0.6, "strength": 0.6, "solid": 0.5, "healthy": 0.5,
		"outperform": 0.8, "outperforms": 0.8,
		"beat": 0.6, "beats": 0.6, "beating": 0.6,
		"exceed": 0.7, "exceeds": 0.7, "exceeded": 0.7,
		"upgrade": 0.8, "upgrades": 0.8, "upgraded": 0.8,
		"buy": 0.7, "confident": 0.6,

		// fundamentals
		"profit": 0.7, "profits": 0.7, "profitable": 0.7,
		"dividend": 0.5, "expansion": 0.6, "improves": 0.6,
		"improved": 0.6, "improvement": 0.6, "success": 0.6,
		"successful": 0.6, "favorable": 0.6, "exceptional": 0.8,
	}
}

func loadBearishWords() map[string]float64 {
	return map[string]float64{
		// strong moves
		"crash": 1.0, "crashes": 1.0, "crashing": 1.0,
		"plunge": 1.0, "plunges": 1.0, "plunging": 1.0,
		"collapse": 1.0, "collapses": 1.0,
		"tumble": 0.9, "tumbles": 0.9, "tumbling": 0.9,
		"tank": 0.9, "tanks": 0.9, "selloff": 0.8, "meltdown": 1.0,

		// performance
		"fall": 0.7, "falls": 0.7, "falling": 0.7,
		"drop": 0.7, "drops": 0.7, "dropping": 0.7,
		"decline": 0.7, "declines": 0.7, "declining": 0.7,
		"slide": 0.6, "slides": 0.6, "sink": 0.7, "sinks": 0.7,
		"slip": 0.5, "slips": 0.5, "dip": 0.5, "dips": 0.5,
		"lower": 0.5, "loss": 0.8, "losses": 0.8,
		"decrease": 0.6, "slowdown": 0.6, "shrink": 0.6,

		// outlook
		"bearish": 0.9, "pessimistic": 0.8, "negative": 0.6,
		"weak": 0.6, "weakness": 0.6, "weakening": 0.6,
		"concern": 0.5, "concerns": 0.5, "worry": 0.6, "worries": 0.6,
		"fear": 0.7, "fears": 0.7, "warning": 0.6, "warns": 0.6,
		"underperform": 0.8, "underperforms": 0.8,
		"miss": 0.6, "misses": 0.6, "missed": 0.6,
		"downgrade": 0.8, "downgrades": 0.8, "downgraded": 0.8,
		"sell": 0.7, "disappointing": 0.7, "disappoints": 0.7,

		// fundamentals and conditions
		"debt": 0.5, "default": 0.9, "bankruptcy": 1.0, "bankrupt": 1.0,
		"fraud": 1.0, "scandal": 0.9, "lawsuit": 0.7,
		"recession": 0.8, "crisis": 0.9, "layoffs": 0.7,
		"impairment": 0.7, "restructuring": 0.5, "deficit": 0.6,
		"unfavorable": 0.6, "unprofitable": 0.7, "volatile": 0.5,
	}
}

func loadIntensifiers() map[string]float64 {
	return map[string]float64{
		"very": 1.5, "extremely": 2.0, "highly": 1.5,
		"significantly": 1.5, "substantially": 1.5,
		"sharply": 1.5, "strongly": 1.3, "dramatically": 1.8,
		"massively": 2.0, "hugely": 1.8,
		"major": 1.3, "huge": 1.5, "big": 1.2, "massive": 1.8,
	}
}

func loadNegators() map[string]bool {
	words := []string{
		"not", "no", "never", "neither", "none", "nothing",
		"hardly", "barely", "scarcely", "without", "unlikely",
		"dont", "doesnt", "didnt", "wont", "wouldnt", "couldnt",
		"cant", "cannot", "isnt", "arent", "wasnt", "werent",
		"hasnt", "havent", "fails", "failed",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

func loadUncertaintyWords() map[string]bool {
	words := []string{
		"almost", "anticipate", "anticipates", "appear", "appears",
		"approximately", "assume", "assumes", "believe", "believes",
		"could", "depend", "depending", "estimate", "estimates",
		"expect", "expects", "forecast", "forecasts", "if",
		"likely", "may", "maybe", "might", "pending", "perhaps",
		"possible", "possibly", "potential", "predict", "predicts",
		"should", "somewhat", "suggest", "suggests", "uncertain",
		"uncertainty", "unclear", "would",
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
