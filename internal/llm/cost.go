package llm

// modelPricing is USD per 1M tokens.
type modelPricing struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

var priceTable = map[string]modelPricing{
	"gemini-2.5-flash":      {InputPerMillion: 0.30, OutputPerMillion: 2.50},
	"gemini-2.5-flash-lite": {InputPerMillion: 0.10, OutputPerMillion: 0.40},
	"gemini-2.5-pro":        {InputPerMillion: 1.25, OutputPerMillion: 10.00},
	"gpt-4o":                {InputPerMillion: 2.50, OutputPerMillion: 10.00},
	"gpt-4o-mini":           {InputPerMillion: 0.15, OutputPerMillion: 0.60},
}

// EstimateCost returns the USD cost of a call, or 0 for unpriced models.
func EstimateCost(model string, inputTokens, outputTokens int) float64 {
	p, ok := priceTable[model]
	if !ok {
		return 0
	}
	return float64(inputTokens)/1e6*p.InputPerMillion + float64(outputTokens)/1e6*p.OutputPerMillion
}
