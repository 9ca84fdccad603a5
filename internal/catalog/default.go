package catalog

// Default returns the built-in 90-day BDR ramp program: four explicitly
// authored weeks, milestone and certification days through day 90, and
// generic month-2/month-3 templates for the days in between.
func Default() *Catalog {
	c := &Catalog{
		days:           defaultDays(),
		phases:         defaultPhases(),
		certifications: defaultCertifications(),
		targets:        defaultTargets(),
		maxDay:         90,
		month2Start:    21,
		month2End:      60,
		month2: DayInfo{
			Title: "Month 2",
			Activities: []string{
				"Complete 10-15 prospecting touches",
				"Expand account coverage",
				"Multi-thread target accounts",
				"Track and improve conversion rates",
				"Independent prospecting execution",
				"Log all activities in the CRM",
			},
			Focus: "Pipeline Building",
		},
		month3Start: 61,
		month3End:   90,
		month3: DayInfo{
			Title: "Month 3",
			Activities: []string{
				"Complete 10-15 strategic touches",
				"Maintain 50+ accounts in active coverage",
				"Work toward 6+ qualified meetings",
				"Run full qualification on every call",
				"Independent operation with minimal oversight",
				"Full ramp execution",
			},
			Focus: "Quota Achievement",
		},
	}
	// Built-in data is trusted; validate anyway so a bad edit fails fast.
	if err := c.validate(); err != nil {
		panic(err)
	}
	return c
}

func defaultPhases() []Phase {
	return []Phase{
		{Name: "Foundation & Orientation", StartDay: 1, EndDay: 5, Color: "blue", Week: 1},
		{Name: "ICP Deep Dive + Prospecting Launch", StartDay: 6, EndDay: 10, Color: "indigo", Week: 2},
		{Name: "Qualification Deep Dive", StartDay: 11, EndDay: 15, Color: "purple", Week: 3},
		{Name: "Live Calling & First Meetings", StartDay: 16, EndDay: 20, Color: "violet", Week: 4},
		{Name: "Building Pipeline", StartDay: 21, EndDay: 60, Color: "emerald", Weeks: "5-8"},
		{Name: "Quota Achievement", StartDay: 61, EndDay: 90, Color: "amber", Weeks: "9-12"},
	}
}

func defaultCertifications() map[int]Certification {
	return map[int]Certification{
		5:  {Name: "Value Prop Pitch", Icon: "🎯"},
		10: {Name: "Account Research Mastery", Icon: "🎯"},
		15: {Name: "Discovery Call Roleplay", Icon: "🎯"},
		20: {Name: "Live Cold Calling", Icon: "🎯"},
		45: {Name: "Mid-Ramp Review", Icon: "🎯"},
		60: {Name: "Advanced Qualification", Icon: "🎯"},
		90: {Name: "Full Cycle Mastery", Icon: "🏆"},
	}
}

func defaultTargets() []ActivityTarget {
	return []ActivityTarget{
		{Days: "1-5", Touches: "Learning", Meetings: "-"},
		{Days: "6-10", Touches: "3-5/day", Meetings: "-"},
		{Days: "11-15", Touches: "5-8/day", Meetings: "-"},
		{Days: "16-30", Touches: "10-12/day", Meetings: "2"},
		{Days: "31-60", Touches: "10-15/day", Meetings: "4 total"},
		{Days: "61-90", Touches: "10-15/day", Meetings: "6+ (12 total)"},
	}
}

func defaultDays() map[int]DayInfo {
	return map[int]DayInfo{
		1: {
			Title: "Welcome & Setup",
			Activities: []string{
				"Kickoff meeting with manager and sales lead",
				"HR orientation",
				"IT and systems setup",
				"Complete the About Me section of the ramp workbook",
				"Review the Resources section of the ramp workbook",
				"Review the GTM foundations deck",
				"Read the ICP and persona playbook",
				"Explore the company site and product platform",
				"End-of-day check-in with manager",
			},
			Focus: "Orientation",
		},
		2: {
			Title: "Learn from the Best",
			Activities: []string{
				"Meet AE #1 (30 min introduction)",
				"Shadow first discovery call",
				"Meet AE #2 (30 min introduction)",
				"Study the GTM foundations assessment deck",
				"Read the ICP and buyer personas deep dive",
				"Draft a 60-second value prop pitch",
			},
			Focus: "AE Shadowing",
		},
		3: {
			Title: "Qualification Framework Training",
			Activities: []string{
				"Qualification framework training session (60 min)",
				"Read the discovery call blueprint",
				"Shadow another discovery call",
				"Read the qualification framework guide",
				"Study the FDA/cGMP regulatory primer",
				"Study the ISO 13485 regulatory primer",
				"Study the AS9100 regulatory primer",
				"Practice the value prop pitch",
			},
			Focus: "Qualification Training",
		},
		4: {
			Title: "Customer Success & Competitive Intel",
			Activities: []string{
				"Meet the head of customer success (30 min)",
				"Shadow another AE call",
				"Review the competitive battle cards",
				"Study customer case studies",
				"Review customer success stories",
				"Practice the value prop pitch with a colleague",
			},
			Focus: "CS & Intel",
		},
		5: {
			Title: "First Certification & Week 1 Review",
			Certification: true,
			Activities: []string{
				"Deliver the value prop pitch to the manager (3-5 min)",
				"Cover who the company is",
				"Cover what the company does",
				"Cover who the company serves",
				"Cover the key differentiators",
				"Qualification framework review session",
				"Week 1 reflection on wins and challenges",
				"Preview the week 2 prospecting launch plan",
			},
			Focus: "Certification",
		},
		6: {
			Title: "Prospecting Launch",
			Activities: []string{
				"Shadow 1-2 AE calls",
				"Meet AE #3 (30 min introduction)",
				"Complete 3-5 prospecting touches",
				"Build a target account list in Sales Navigator",
				"Research accounts using the account research template",
				"Log all activities in the CRM",
			},
			Focus: "Prospecting Start",
		},
		7: {
			Title: "Prospecting Ramp",
			Activities: []string{
				"Shadow AE calls",
				"Complete 3-5 prospecting touches",
				"Make cold calls using the call script framework",
				"Send personalized emails from the template library",
				"Send LinkedIn connection requests and messages",
				"Industry deep dive: life sciences (FDA/cGMP)",
			},
			Focus: "Prospecting",
		},
		8: {
			Title: "Account Research Focus",
			Activities: []string{
				"Shadow AE calls",
				"Meet AE #4 (30 min introduction)",
				"Complete 3-5 prospecting touches",
				"Deep research on 2-3 target accounts",
				"Industry deep dive: medical devices (ISO 13485)",
				"Log all activities in the CRM",
			},
			Focus: "Research",
		},
		9: {
			Title: "Multi-Touch Campaigns",
			Activities: []string{
				"Shadow AE calls",
				"Complete 3-5 prospecting touches",
				"Industry deep dive: aerospace (AS9100)",
				"Review the objection handling library",
				"Prepare 5 accounts for certification",
				"Plan a multi-touch campaign for each account",
			},
			Focus: "Campaigns",
		},
		10: {
			Title: "Account Research Certification",
			Certification: true,
			Activities: []string{
				"Present research on 5 accounts to the manager",
				"Demonstrate ICP fit analysis",
				"Present pain point hypotheses",
				"Explain the regulatory context for each account",
				"Present the multi-touch campaign plan",
				"Receive feedback and pass or revise",
			},
			Focus: "Certification",
		},
		11: {
			Title: "Qualification Deep Dive Begins",
			Activities: []string{
				"Qualification deep dive training (2 hrs)",
				"Complete 5-8 targeted touches",
				"Study the discovery call blueprint in detail",
				"Research 3-4 new accounts",
				"Practice discovery questions with a regulatory focus",
				"Log all activities in the CRM",
			},
			Focus: "Qualification Mastery",
		},
		12: {
			Title: "Regulatory Focus",
			Activities: []string{
				"Complete 5-8 targeted touches",
				"Practice discovery with a regulatory angle",
				"Research 3-4 new accounts",
				"Review 2-3 call recordings",
				"Refine the qualification approach from feedback",
				"CRM hygiene pass over all records",
			},
			Focus: "Regulatory",
		},
		13: {
			Title: "Expanding Coverage",
			Activities: []string{
				"Complete 5-8 targeted touches",
				"Research 3-4 new accounts",
				"Qualification roleplay with a colleague",
				"Listen to 2-3 successful call recordings",
				"Refine messaging based on learnings",
				"Prepare for the week 3 certification",
			},
			Focus: "Expansion",
		},
		14: {
			Title: "Certification Prep",
			Activities: []string{
				"Complete 5-8 targeted touches",
				"Final account research batch (3-4 accounts)",
				"Qualification roleplay practice session",
				"Review all regulatory primers",
				"Mock certification run with a colleague",
				"Confirm 15-20 accounts in coverage",
			},
			Focus: "Prep",
		},
		15: {
			Title: "Discovery Call Certification",
			Certification: true,
			Activities: []string{
				"30-min roleplay with the manager and sales lead",
				"Demonstrate qualification in a regulatory scenario",
				"Handle objections appropriately",
				"Score 70+ on the discovery call rubric",
				"Week 3 review and feedback",
				"Prepare for week 4 live calling",
			},
			Focus: "Certification",
		},
		16: {
			Title: "Full Prospecting Mode",
			Activities: []string{
				"Complete 10-12 touches",
				"Target 3-4 meaningful conversations",
				"Work toward booking the first meeting",
				"Apply the qualification framework in real calls",
				"Track conversion metrics",
				"Call coaching session with the manager",
			},
			Focus: "Live Calling",
		},
		17: {
			Title: "Meeting Generation Push",
			Activities: []string{
				"Complete 10-12 touches",
				"Focus on meaningful conversations",
				"Follow up on all warm leads",
				"Multi-thread 2-3 target accounts",
				"Review and refine the approach",
				"Update CRM pipeline tracking",
			},
			Focus: "Meetings",
		},
		18: {
			Title: "Conversion Focus",
			Activities: []string{
				"Complete 10-12 touches",
				"Analyze and improve conversion rates",
				"Practice tighter qualification",
				"Push for first meeting bookings",
				"Review 2-3 call recordings",
				"Coaching session with the manager",
			},
			Focus: "Conversion",
		},
		19: {
			Title: "Meeting Close Push",
			Activities: []string{
				"Complete 10-12 touches",
				"Prioritize the warmest prospects",
				"Push to book meetings before day 20",
				"Prepare for the live call certification",
				"Track all activities in the CRM",
				"Final push toward the 2-meeting goal",
			},
			Focus: "Closing",
		},
		20: {
			Title: "Live Cold Call Certification",
			Certification: true,
			Activities: []string{
				"Manager shadows 3-5 live cold calls",
				"Advance at least one call to a next step",
				"Demonstrate qualification framework application",
				"Handle real objections effectively",
				"Month 1 performance review",
				"Preview the month 2 independence plan",
			},
			Focus: "Certification",
		},
		30: {
			Title: "Month 1 Complete",
			Milestone: true,
			Activities: []string{
				"Confirm 2 meetings booked (month 1 goal)",
				"Review month 1 activity metrics",
				"Analyze conversion rates",
				"Identify strategy adjustments",
				"Plan month 2 account expansion",
				"Set a 150+ account coverage target",
			},
			Focus: "Milestone",
		},
		45: {
			Title: "Mid-Ramp Review",
			Certification: true,
			Activities: []string{
				"60-min comprehensive review with the manager",
				"Pipeline review of meetings booked and in progress",
				"Activity analysis of touches and conversations",
				"Conversion rate review",
				"Qualification application assessment",
				"Course corrections and month 2 strategy",
			},
			Focus: "Review",
		},
		60: {
			Title: "Advanced Qualification Certification",
			Certification: true,
			Activities: []string{
				"Complex regulatory scenario roleplay",
				"Handle multiple stakeholder dynamics",
				"Score 80+ on the discovery call rubric",
				"Confirm 4 total meetings (month 2 goal)",
				"Month 2 performance review",
				"Plan month 3 quota achievement",
			},
			Focus: "Certification",
		},
		90: {
			Title: "Full Cycle Mastery",
			Certification: true,
			Milestone: true,
			Activities: []string{
				"30-min strategic insight presentation",
				"Share market insights from 90 days",
				"Present persona refinements learned",
				"Share messaging that works",
				"Pipeline forecast presentation",
				"Book one meeting live during the session",
				"Confirm 12+ total meetings (90-day goal)",
				"Full independence certification",
			},
			Focus: "Graduation",
		},
	}
}
