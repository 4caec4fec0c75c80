package memory

import "ethics-quiz-service/internal/domain"

// DefaultCatalog is the built-in AI-ethics question set used when no
// database is configured, and the seed data for the postgres catalog.
func DefaultCatalog() []domain.Question {
	return []domain.Question{
		// Lower grades.
		{
			ID:           "low-01",
			Prompt:       "What should you do if an AI chatbot asks for your home address?",
			Options:      []string{"Type it right away", "Keep it private and ask a trusted adult", "Share it only with friendly bots", "Post it in the chat for everyone"},
			CorrectIndex: 1,
			Explanation:  "Personal details like your address stay private. Check with a trusted adult before sharing anything with an AI.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-02",
			Prompt:       "An AI drawing tool made a picture for you. Who helped teach the AI to draw?",
			Options:      []string{"Nobody, it was born knowing", "Many artists whose pictures it learned from", "One single robot painter", "The electricity company"},
			CorrectIndex: 1,
			Explanation:  "AI tools learn from lots of pictures made by real people, so we should respect the artists behind them.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-03",
			Prompt:       "Is everything an AI says always true?",
			Options:      []string{"Yes, computers never make mistakes", "No, AI can be wrong, so double-check", "Only on weekends", "Yes, if it talks politely"},
			CorrectIndex: 1,
			Explanation:  "AI can sound confident and still be wrong. Checking with books, teachers, or parents is a good habit.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-04",
			Prompt:       "Your friend is upset because an AI filter made fun of their face. What is the kind thing to do?",
			Options:      []string{"Share the funny picture with the class", "Tell them it is their fault", "Stop using the filter and comfort your friend", "Ask the AI to make more"},
			CorrectIndex: 2,
			Explanation:  "Tools should never be used to hurt people. Being kind matters more than a funny picture.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-05",
			Prompt:       "Who is responsible when a person uses AI to cheat on homework?",
			Options:      []string{"The person who cheated", "The AI", "The computer mouse", "The internet"},
			CorrectIndex: 0,
			Explanation:  "AI is a tool. The person choosing how to use it is responsible for what happens.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-06",
			Prompt:       "An AI game suggests you keep playing past bedtime. What should you do?",
			Options:      []string{"Keep playing, the AI knows best", "Follow your family's rules and stop", "Hide the tablet under your pillow", "Ask the AI for one more hour"},
			CorrectIndex: 1,
			Explanation:  "Apps are built to keep your attention. You and your family decide your screen time, not the app.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-07",
			Prompt:       "Why should you tell a grown-up if an AI says something scary or strange?",
			Options:      []string{"So they can help and check it out", "To get the AI in trouble", "Because grown-ups love scary stories", "You should keep it secret"},
			CorrectIndex: 0,
			Explanation:  "Grown-ups can help you understand strange messages and report problems with the app.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-08",
			Prompt:       "A photo you see online looks amazing but was made by AI. What is true about it?",
			Options:      []string{"It must be a real photo", "It may show things that never happened", "AI pictures are always labeled", "Only adults can see AI pictures"},
			CorrectIndex: 1,
			Explanation:  "AI can make very real-looking pictures of things that never happened, so think before you believe or share.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-09",
			Prompt:       "Is it okay to say mean things to a voice assistant?",
			Options:      []string{"Yes, it has no feelings so nothing matters", "Practicing kindness is better, even with machines", "Only if it answers wrong", "Yes, it makes the AI smarter"},
			CorrectIndex: 1,
			Explanation:  "The assistant has no feelings, but how we practice talking shapes how we treat people.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-10",
			Prompt:       "Your AI homework helper gives you a full answer. What is the best way to use it?",
			Options:      []string{"Copy it word for word", "Use it to understand, then write your own answer", "Hand in the AI's answer with your name", "Print it and sell it"},
			CorrectIndex: 1,
			Explanation:  "Learning happens when you do the thinking. AI can explain, but the work you hand in should be yours.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-11",
			Prompt:       "Why do AI speakers listen for a wake word like 'Hey'?",
			Options:      []string{"They are nosy", "So they only record after you call them", "They are afraid of silence", "To learn your favorite songs"},
			CorrectIndex: 1,
			Explanation:  "The wake word is a privacy guard: the assistant should only start listening when you ask it to.",
			Tier:         domain.TierLow,
		},
		{
			ID:           "low-12",
			Prompt:       "A robot vacuum bumps into your cat. Who should make sure the cat is safe?",
			Options:      []string{"The people in the house", "The vacuum", "The cat", "Nobody"},
			CorrectIndex: 0,
			Explanation:  "Machines follow instructions; people are the ones responsible for using them safely around others.",
			Tier:         domain.TierLow,
		},

		// Upper grades.
		{
			ID:           "high-01",
			Prompt:       "An AI hiring tool rejects more applicants from one neighborhood. What is the most likely cause?",
			Options:      []string{"The neighborhood has slow internet", "Bias in the data the AI learned from", "AI dislikes some postcodes", "A coincidence that can be ignored"},
			CorrectIndex: 1,
			Explanation:  "AI models learn patterns from historical data. If that data reflects unfair treatment, the model can repeat it.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-02",
			Prompt:       "What is a 'deepfake'?",
			Options:      []string{"A very deep ocean photo", "AI-made video or audio that imitates a real person", "A long video game level", "A filter that sharpens pictures"},
			CorrectIndex: 1,
			Explanation:  "Deepfakes use AI to fabricate convincing video or audio of real people, which can spread false information.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-03",
			Prompt:       "Why should important decisions about people, like medical care, not be left to AI alone?",
			Options:      []string{"AI is too slow", "AI cannot be responsible; humans must review and decide", "Doctors would get bored", "Computers are expensive"},
			CorrectIndex: 1,
			Explanation:  "AI can assist with analysis, but accountability for decisions about people has to stay with humans.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-04",
			Prompt:       "A recommendation feed keeps showing you only one opinion. What is this effect called?",
			Options:      []string{"A filter bubble", "A power surge", "Open-mindedness", "A firmware update"},
			CorrectIndex: 0,
			Explanation:  "Algorithms that optimize for your clicks can trap you in a filter bubble; seeking other sources keeps your view balanced.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-05",
			Prompt:       "Which of these is personal data an AI service should protect?",
			Options:      []string{"The weather forecast", "Your face scans and location history", "A public bus timetable", "The school's lunch menu"},
			CorrectIndex: 1,
			Explanation:  "Biometric and location data can identify and track you, so services must guard them and you should share them carefully.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-06",
			Prompt:       "An AI essay tool writes a paragraph you submit as your own. What is the main ethical problem?",
			Options:      []string{"The grammar might be off", "It is plagiarism: presenting work that is not yours", "Essays should be handwritten", "AI text is always detected"},
			CorrectIndex: 1,
			Explanation:  "Submitting AI output as your own work misrepresents what you did, which is the core of plagiarism.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-07",
			Prompt:       "Why do researchers publish how their AI models were trained and tested?",
			Options:      []string{"To make the papers longer", "Transparency lets others check for errors and bias", "It is required to win prizes", "To hide the real method"},
			CorrectIndex: 1,
			Explanation:  "Transparency allows independent scrutiny, which is how errors and unfair behavior get caught and fixed.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-08",
			Prompt:       "A self-driving car must be tested before carrying passengers mainly because...",
			Options:      []string{"Tests make good advertisements", "Safety of people comes before releasing technology", "Cars enjoy practice", "Testing lowers fuel use"},
			CorrectIndex: 1,
			Explanation:  "When technology can hurt people, proving it is safe comes before putting it into the world.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-09",
			Prompt:       "What does it mean when an AI 'hallucinates'?",
			Options:      []string{"It overheats", "It states made-up information as if it were fact", "It dreams at night", "It refuses to answer"},
			CorrectIndex: 1,
			Explanation:  "Language models can generate fluent but false statements, so their answers need verification.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-10",
			Prompt:       "Who should be able to find out why an AI denied someone a loan?",
			Options:      []string{"Nobody, it is a trade secret", "The affected person deserves an explanation", "Only the AI itself", "The person's neighbors"},
			CorrectIndex: 1,
			Explanation:  "Explainability matters: people affected by automated decisions have a right to understand and contest them.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-11",
			Prompt:       "Using someone's voice in an AI clone without permission is wrong mainly because it violates their...",
			Options:      []string{"Bandwidth", "Consent and control over their own identity", "Singing talent", "Phone contract"},
			CorrectIndex: 1,
			Explanation:  "A person's voice and likeness belong to them; using them without consent takes away that control.",
			Tier:         domain.TierHigh,
		},
		{
			ID:           "high-12",
			Prompt:       "Why might an AI translation be unfair to a small language community?",
			Options:      []string{"Small languages are harder to type", "Little training data means worse quality for them", "Translators charge more", "The alphabet is too pretty"},
			CorrectIndex: 1,
			Explanation:  "Model quality follows data. Communities with little digital text get worse tools, which can widen existing gaps.",
			Tier:         domain.TierHigh,
		},
	}
}
