package pages

// Terms is the Terms & Conditions document.
var Terms = InfoPage{
	Title:   "Terms & Conditions",
	Updated: "15th November 2025",
	Intro: []string{
		"Welcome to KanoonAI, an AI-powered legal assistance platform designed to simplify legal research, automate document drafting, and provide quick, reliable legal insights.",
		"By accessing or using KanoonAI, you agree to these Terms & Conditions. If you do not agree, please do not use the Platform.",
	},
	Sections: []InfoSection{
		{Title: "1. Definitions", Body: nodes(
			para("For the purposes of these Terms:"),
			bullets(
				"“Platform” refers to the KanoonAI website, tools, APIs, and services.",
				"“User” or “You” means any person accessing or using the Platform.",
				"“Content” means all information, responses, documents, code, or data generated through the Platform.",
				"“Services” refers to AI-based legal summaries, research tools, document drafting assistance, lawyer recommendations, and any other features KanoonAI provides.",
			),
		)},
		{Title: "2. Nature of the Platform", Body: nodes(
			para("KanoonAI is not a law firm, does not provide official legal advice, and does not represent users in any legal proceedings."),
			para("The Platform uses artificial intelligence to assist with legal information, but:"),
			bullets(
				"It cannot replace a licensed advocate.",
				"Outputs may contain errors, omissions, or outdated information.",
				"Users must verify all AI-generated content before relying on it.",
			),
			para("No lawyer-client relationship is created through KanoonAI."),
		)},
		{Title: "3. Eligibility", Body: nodes(
			para("To use the Platform, you must:"),
			bullets(
				"Use the Platform only for lawful and educational purposes;",
				"Not violate any applicable Indian laws;",
				"Not misuse the Platform by scraping, spamming, reverse engineering, or engaging in harmful activities.",
			),
			para("Since KanoonAI is an educational legal technology platform, individuals of any age, including students below 18, are permitted to access and use the Platform."),
		)},
		{Title: "4. Description of Services", Body: nodes(
			para("KanoonAI provides the following services, which may expand or change over time:"),
			bullets(
				"AI-generated case law summaries",
				"Section-wise act explanations",
				"Legal document drafting assistance",
				"FIR explanation and formatting",
				"Automated legal research assistance",
				"Extraction of legal details from uploaded PDFs",
			),
			para("KanoonAI may modify, update, or discontinue parts of its Services at any time."),
		)},
		{Title: "5. No Legal Advice Disclaimer", Body: nodes(
			para("All outputs generated by KanoonAI are informational and educational. They do not constitute legal advice."),
			para("KanoonAI does not guarantee accuracy, completeness, or correctness of its content. It should be used as a support tool, not a substitute for legal consultation. Users are strongly encouraged to consult a licensed advocate for professional advice."),
		)},
		{Title: "6. User Responsibilities", Body: nodes(
			para("You agree to:"),
			bullets(
				"Provide accurate and lawful information.",
				"Not upload harmful, abusive, defamatory, or illegal materials.",
				"Not use the Platform to generate fraudulent legal documents.",
				"Not violate any intellectual property rights of third parties.",
				"Not exploit system vulnerabilities or interfere with service functionality.",
				"Verify the AI output before using it in legal matters.",
			),
			para("Any misuse may result in account termination and legal action."),
		)},
		{Title: "7. Data Collection & Privacy", Body: nodes(
			para("KanoonAI collects certain types of data to improve performance and user experience, such as user queries, uploaded documents, usage patterns, and account information (if applicable)."),
			para("We do not sell user data. A separate Privacy Policy governs how your data is collected and stored. By using the Platform, you consent to data usage outlined in the Privacy Policy."),
		)},
		{Title: "8. Intellectual Property Rights", Body: nodes(
			para("All rights in the Platform, including software, algorithms, UI/UX design, branding, trademarks, icons, text, graphics, and training data/models, are the exclusive property of KanoonAI or its licensors."),
			para("Users may use AI-generated outputs for personal and educational purposes but cannot:"),
			bullets(
				"Resell KanoonAI outputs as a service",
				"Copy or reproduce the platform features",
				"Reverse engineer or extract the model",
				"Build competing AI legal products using our content",
			),
		)},
		{Title: "9. Third-Party Services", Body: nodes(
			para("KanoonAI may integrate with third-party tools and APIs, such as search engines, AI model providers, cloud hosting platforms, public lawyer directories (Bar Council databases), and PDF processing libraries."),
			para("We are not responsible for failures or inaccuracies in third-party services. Users should read the Terms of those third parties separately."),
		)},
		{Title: "10. Limitation of Liability", Body: nodes(
			para("To the maximum extent permitted by Indian law, KanoonAI is not liable for direct, indirect, special, incidental, or consequential damages. The Platform is provided on an “as-is” and “as-available” basis. Users willingly take full responsibility for how they use the Platform."),
		)},
		{Title: "11. Indemnification", Body: nodes(
			para("You agree to indemnify and hold harmless KanoonAI, its team, partners, and affiliates from any claims, damages, losses, liabilities, or expenses arising out of misuse of the Platform or violation of these Terms."),
		)},
		{Title: "12. Changes to Terms", Body: nodes(
			para("KanoonAI may update, modify, or change these Terms & Conditions at any time. Changes take effect immediately upon posting. Continued use of the Platform constitutes acceptance of the updated Terms."),
		)},
		{Title: "13. Termination", Body: nodes(
			para("KanoonAI reserves the right to limit access, suspend accounts, or permanently terminate use for violations, unlawful activity, system abuse, or security concerns. Users may stop using the Platform at any time."),
		)},
		{Title: "14. Governing Law & Jurisdiction", Body: nodes(
			para("These Terms are governed by the laws of India. Any disputes will be resolved exclusively in the courts located in Bangalore, Karnataka."),
		)},
		{Title: "15. Contact Information", Body: nodes(
			para("For any concerns, support, or legal queries, you may contact:"),
			mailto(),
		)},
	},
}

// Privacy is the Privacy Policy document.
var Privacy = InfoPage{
	Title:   "Privacy Policy",
	Updated: "16th November 2025",
	Intro: []string{
		"KanoonAI (“we”, “our”, “us”) is committed to protecting your privacy and ensuring that your personal data is handled responsibly, securely, and transparently.",
		"This Privacy Policy explains how we collect, use, store, and protect the information you provide while using our Platform.",
		"By accessing or using KanoonAI, you agree to the practices described in this Privacy Policy.",
	},
	Sections: []InfoSection{
		{Title: "1. Information We Collect", Body: nodes(
			para("We collect the following types of information when you use the Platform:"),
			bullets(
				"Search queries",
				"Legal questions",
				"Uploaded PDFs, documents, or case files",
				"Text entered in forms",
				"Contact information (only if you voluntarily provide it)",
			),
			para("We may automatically collect certain information such as:"),
			bullets(
				"Device type, browser type, operating system",
				"IP address",
				"Usage logs (pages visited, features used, timestamps)",
				"Error logs and debugging data",
			),
			para("This is used solely to improve performance, security, and reliability."),
		)},
		{Title: "2. How We Use Your Information", Body: nodes(
			bullets(
				"To generate legal summaries, insights, and responses",
				"To improve the accuracy and performance of our AI models",
				"To enhance user experience and platform usability",
				"For analytics, debugging, and fraud prevention",
				"To protect the platform against misuse",
			),
			para("We do not use your information for advertising or marketing unless you explicitly opt-in."),
		)},
		{Title: "3. How We Handle Uploaded Documents", Body: nodes(
			para("When you upload FIRs, legal case PDFs, or documents they are processed securely, used only for generating responses requested by you, and protected with strict access control."),
			para("We do not claim ownership over any uploaded documents."),
		)},
		{Title: "4. Data Sharing & Third Parties", Body: nodes(
			para("KanoonAI does not sell, rent, or trade user data. We may share necessary data only with cloud hosting providers, AI model providers, and essential analytics and security tools."),
			para("We do not share personal information with advertisers, legal firms, or external agencies."),
		)},
		{Title: "5. Cookies & Tracking Technologies", Body: nodes(
			para("KanoonAI may use cookies, session storage, local browser storage, and analytics scripts to improve platform performance and detect unusual activity."),
			para("You can disable cookies in your browser, but certain features may stop working."),
		)},
		{Title: "6. Data Security", Body: nodes(
			bullets(
				"Encryption",
				"Secure server infrastructure",
				"Access control",
				"Regular security audits",
				"Threat detection and monitoring",
			),
			para("However, no system is completely immune from vulnerabilities. Users are advised to avoid sharing sensitive personal details unnecessarily."),
		)},
		{Title: "7. Data Retention", Body: nodes(
			para("We retain user information only for as long as necessary to provide services, improve the platform, comply with legal requirements, and resolve disputes."),
			para("You may request deletion of your data at any time (see Section 9)."),
		)},
		{Title: "8. Children’s Privacy", Body: nodes(
			para("KanoonAI may be used by individuals under 18 strictly for educational and learning purposes."),
			para("If you believe a minor has shared personal data, contact us for immediate removal."),
		)},
		{Title: "9. Your Rights", Body: nodes(
			bullets(
				"Request access to your data",
				"Request correction of inaccurate data",
				"Request deletion of your data",
			),
			para("To exercise these rights, contact:"),
			mailto(),
		)},
	},
}

// Support is the Customer Support policy.
var Support = InfoPage{
	Title:   "Customer Support",
	Updated: "November 16, 2025",
	Intro: []string{
		"At KanoonAI, we aim to provide fast, reliable, and helpful customer support to ensure a smooth experience for all users. This policy explains how users can contact us, how we handle support requests, and what they can expect from our support process.",
	},
	Sections: []InfoSection{
		{Title: "1. Support Availability", Body: nodes(
			para("KanoonAI offers customer support through email only."),
			bullets("Monday to Saturday", "10:00 AM to 7:00 PM (IST)"),
			para("Responses outside these hours may be delayed to the next working day."),
		)},
		{Title: "2. How to Contact Support", Body: nodes(
			para("All support requests can be emailed to:"),
			mailto(),
			para("When contacting support, please include:"),
			bullets("Your full name", "A clear description of the issue", "Screenshots or error messages"),
		)},
		{Title: "3. Types of Issues We Support", Body: nodes(
			bullets(
				"Errors or bugs in KanoonAI",
				"Issues with generating responses",
				"Problems with PDF uploads, extraction, or case summaries",
				"Account or access issues",
				"How to use KanoonAI features",
				"Security concerns",
			),
		)},
		{Title: "4. Issues We Do Not Support", Body: nodes(
			bullets(
				"Providing legal advice",
				"Solving personal legal cases directly",
				"Court procedure guidance",
				"Urgent or emergency legal matters",
			),
			para("For legal advice, always consult a licensed advocate."),
		)},
		{Title: "5. Response Time", Body: nodes(
			para("We aim to respond to all emails within 24–48 hours on working days."),
			para("Complex issues may take up to 72 hours to investigate and resolve."),
		)},
		{Title: "6. User Responsibilities", Body: nodes(
			bullets(
				"Provide accurate information about their issue",
				"Not misuse or spam the support email",
				"Communicate respectfully with the support team",
				"Avoid sharing unnecessary sensitive personal information",
			),
		)},
		{Title: "7. Security & Privacy of Support Requests", Body: nodes(
			para("All support queries are handled confidentially. Do not send sensitive personal information (Aadhar, PAN, financial info, etc.)."),
		)},
		{Title: "8. Escalation Procedure", Body: nodes(
			para("If an issue remains unresolved you may request an escalation in the same email thread. Escalations are handled within 2–5 working days depending on complexity."),
		)},
		{Title: "9. Limitations of Support", Body: nodes(
			bullets(
				"Support cannot guarantee a solution if the issue is caused by third-party tools or external services",
				"Support cannot override system restrictions or AI model limitations",
				"Support cannot modify legal outputs manually",
			),
		)},
		{Title: "10. Updates to Customer Support Policy", Body: nodes(
			para("We may update this policy from time to time to improve clarity and service quality. Changes become effective immediately upon posting."),
		)},
	},
}

// ReportIssue explains how to report a problem.
var ReportIssue = InfoPage{
	Title:   "Report Issue",
	Updated: "November 16, 2025",
	Intro: []string{
		"If you face any problem while using KanoonAI, you can report it to us.",
		"We will check the issue and fix it as soon as possible.",
	},
	Sections: []InfoSection{
		{Title: "1. What Issues You Can Report", Body: nodes(
			bullets(
				"Errors in responses",
				"Problems with PDF upload or extraction",
				"Bugs or glitches",
				"Slow loading or page not working",
				"Wrong or unexpected AI output",
				"Security or misuse concerns",
			),
		)},
		{Title: "2. How to Report", Body: nodes(
			para("Email your issue to:"),
			mailto(),
			para("Please include:"),
			bullets("A short description of the issue", "Screenshot (if possible)"),
		)},
		{Title: "3. Response Time", Body: nodes(
			para("We usually reply within 24–48 hours."),
			para("Fixing the issue may take a few days, depending on the problem."),
		)},
		{Title: "4. Important Note", Body: nodes(
			bullets(
				"Do not share sensitive personal information.",
				"Please explain the issue clearly so we can understand and resolve it faster.",
			),
		)},
	},
}
