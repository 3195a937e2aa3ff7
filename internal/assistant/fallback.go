package assistant

import "strings"

// fallbackRule pairs a predicate over the lowercased user message with a
// canned reply. Rules are evaluated in order, first match wins, so the
// ordering below is load-bearing.
type fallbackRule struct {
	matches func(msg string) bool
	reply   string
}

func contains(sub string) func(string) bool {
	return func(msg string) bool { return strings.Contains(msg, sub) }
}

func all(preds ...func(string) bool) func(string) bool {
	return func(msg string) bool {
		for _, p := range preds {
			if !p(msg) {
				return false
			}
		}
		return true
	}
}

func any(preds ...func(string) bool) func(string) bool {
	return func(msg string) bool {
		for _, p := range preds {
			if p(msg) {
				return true
			}
		}
		return false
	}
}

var fallbackRules = []fallbackRule{
	{
		matches: all(contains("save"), contains("energy")),
		reply: "Here are 3 personalized tips to save energy:\n\n1. Your refrigerator uses about 15% of your total consumption. Make sure it's not set too cold (optimal is 3-4°C).\n\n2. Based on your usage patterns, shifting your laundry to off-peak hours could save you ₹120 per month.\n\n3. Your evening energy spike is mostly from lighting. Consider smart LED bulbs that you can control remotely.",
	},
	{
		matches: all(contains("bill"), any(contains("high"), contains("reduce"))),
		reply: "I analyzed your recent bill of ₹940 and found it's 12% higher than seasonal average. The increase appears to be from your AC usage, which increased 30% during the recent heat wave. Try setting your AC to 24°C instead of 22°C, which could save up to ₹180 next month.",
	},
	{
		matches: all(contains("appliance"), contains("consuming")),
		reply: "Based on your home's data, your top energy consumers are:\n\n1. Air Conditioner: 38% (₹357/month)\n2. Refrigerator: 15% (₹141/month)\n3. Water Heater: 12% (₹113/month)\n\nYour AC is using more energy than typical for its size. Consider having it serviced, as it might need refrigerant or have a dirty filter.",
	},
	{
		matches: any(contains("hello"), contains("hi")),
		reply: "Hello! I'm WattBot, your AI energy assistant. I can help you save energy, understand your bills, get personalized tips, track your appliances, and more. What would you like help with today?",
	},
}

const genericFallback = "I'm looking at your energy data and have some insights. Your usage is currently 8.4 kWh today, which is 12% lower than your daily average. Great job! Is there something specific about your energy usage you'd like to know?"

// FallbackResponse answers a user message from the local rule set, used
// whenever the remote model is unreachable.
func FallbackResponse(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range fallbackRules {
		if rule.matches(msg) {
			return rule.reply
		}
	}
	return genericFallback
}
