package ai

// FallbackQuestions returns the fixed preparation set used whenever the
// model is unavailable or its output cannot be parsed. The API contract is
// that question generation never fails; the caller substitutes this set
// instead of surfacing an error.
func FallbackQuestions() []Question {
	return []Question{
		{
			Question: "Tell me about yourself and your background.",
			Answer:   "Structure your answer around your current role, one or two relevant achievements, and why this position interests you. Keep it under two minutes.",
			Example:  "I'm a backend engineer with four years of experience building payment systems. Most recently I led the migration of our billing service, which cut processing errors by 40%. I'm excited about this role because it combines distributed systems with a product I use myself.",
			Type:     "behavioral",
		},
		{
			Question: "Why do you want to work at this company?",
			Answer:   "Show you researched the company. Connect its product, mission, or engineering culture to your own goals rather than listing perks.",
			Example:  "I've followed your engineering blog for a year and your approach to incremental rollouts matches how I like to ship. I also use the product weekly, so I'd be building something I genuinely care about.",
			Type:     "behavioral",
		},
		{
			Question: "Describe a challenging problem you solved recently.",
			Answer:   "Use the STAR method: Situation, Task, Action, Result. Pick a problem with a measurable outcome and emphasize your specific contribution.",
			Example:  "Our nightly batch job started timing out as data grew. I profiled it, found an N+1 query pattern, batched the lookups, and brought the runtime from six hours to twenty minutes.",
			Type:     "technical",
		},
		{
			Question: "What are your greatest strengths and weaknesses?",
			Answer:   "Pick a strength backed by evidence and a real weakness you are actively working on, with the concrete steps you are taking.",
			Example:  "My strength is breaking vague requirements into shippable pieces. My weakness is that I used to under-communicate progress; I now post short written updates twice a week, which my last team said made a real difference.",
			Type:     "behavioral",
		},
		{
			Question: "Do you have any questions for us?",
			Answer:   "Always have two or three prepared. Ask about team practices, success criteria for the role, or current challenges, not salary or vacation in a first round.",
			Example:  "What does success look like for this role in the first six months? How does the team handle on-call and incident retrospectives?",
			Type:     "behavioral",
		},
	}
}
