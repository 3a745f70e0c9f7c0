package seed

import "github.com/arash/truth-or-dare-bot/internal/domain"

var defaultPrompts = []domain.Prompt{
	// Truth / general
	{Kind: domain.ActionTruth, Text: "What is the last lie you told a family member?", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "When was the last time you cried, and why?", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "Have you ever checked someone's phone without asking?", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "Have you ever cheated on a test?", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "Is there someone in this group you secretly admire?", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "What is the scariest thing you have ever experienced?", Difficulty: domain.DifficultyMedium, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "If you could change one thing about your past, what would it be?", Difficulty: domain.DifficultyMedium, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "Which lie still gives you a guilty conscience?", Difficulty: domain.DifficultyMedium, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "What is the biggest secret you have never told anyone here?", Difficulty: domain.DifficultyHard, Category: domain.CategoryGeneral},
	{Kind: domain.ActionTruth, Text: "What do you hide about yourself more than anything else?", Difficulty: domain.DifficultyHard, Category: domain.CategoryGeneral},

	// Truth / challenge
	{Kind: domain.ActionTruth, Text: "Name the person in this group you would trust with your phone unlocked.", Difficulty: domain.DifficultyEasy, Category: domain.CategoryChallenge},
	{Kind: domain.ActionTruth, Text: "Confess the most embarrassing message you ever sent to the wrong person.", Difficulty: domain.DifficultyMedium, Category: domain.CategoryChallenge},
	{Kind: domain.ActionTruth, Text: "Describe the worst betrayal you have seen or committed.", Difficulty: domain.DifficultyHard, Category: domain.CategoryChallenge},

	// Truth / performance
	{Kind: domain.ActionTruth, Text: "Tell the story of your most embarrassing public moment, acted out.", Difficulty: domain.DifficultyMedium, Category: domain.CategoryPerformance},
	{Kind: domain.ActionTruth, Text: "Recite, word for word, the last excuse you gave to skip plans.", Difficulty: domain.DifficultyEasy, Category: domain.CategoryPerformance},

	// Dare / general
	{Kind: domain.ActionDare, Text: "Send the last photo in your gallery to the group.", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionDare, Text: "Talk in a whisper for the next three rounds.", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionDare, Text: "Let the player to your left write your status message.", Difficulty: domain.DifficultyEasy, Category: domain.CategoryGeneral},
	{Kind: domain.ActionDare, Text: "Call a friend and sing them happy birthday, whatever the date.", Difficulty: domain.DifficultyMedium, Category: domain.CategoryGeneral},
	{Kind: domain.ActionDare, Text: "Post an embarrassing childhood photo of yourself.", Difficulty: domain.DifficultyMedium, Category: domain.CategoryGeneral},
	{Kind: domain.ActionDare, Text: "Let the group scroll your most recent chat for ten seconds.", Difficulty: domain.DifficultyHard, Category: domain.CategoryGeneral},
	{Kind: domain.ActionDare, Text: "Message your crush or an ex, text chosen by the group.", Difficulty: domain.DifficultyHard, Category: domain.CategoryGeneral},

	// Dare / challenge
	{Kind: domain.ActionDare, Text: "Eat a spoonful of the spiciest thing available.", Difficulty: domain.DifficultyMedium, Category: domain.CategoryChallenge},
	{Kind: domain.ActionDare, Text: "Hold a plank until your next turn comes around.", Difficulty: domain.DifficultyMedium, Category: domain.CategoryChallenge},
	{Kind: domain.ActionDare, Text: "Hand your phone to another player for one full round.", Difficulty: domain.DifficultyHard, Category: domain.CategoryChallenge},

	// Dare / performance
	{Kind: domain.ActionDare, Text: "Perform your best dance move with no music.", Difficulty: domain.DifficultyEasy, Category: domain.CategoryPerformance},
	{Kind: domain.ActionDare, Text: "Imitate another player until someone guesses who it is.", Difficulty: domain.DifficultyMedium, Category: domain.CategoryPerformance},
	{Kind: domain.ActionDare, Text: "Sing everything you say for the next two rounds.", Difficulty: domain.DifficultyHard, Category: domain.CategoryPerformance},
}
