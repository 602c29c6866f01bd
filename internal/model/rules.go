package model

// RuleID identifies a gamification rule
type RuleID string

const (
	RuleKill              RuleID = "kill"
	RuleHeadshot          RuleID = "headshot"
	RuleDeath             RuleID = "death"
	RuleBaseParticipation RuleID = "base_participation"
)

// XpRule is a configurable XP award. The Xp value may be negative (a penalty).
type XpRule struct {
	ID          RuleID `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Xp          int    `json:"xp"`
}

// Hardcoded fallbacks, used when a rule is missing from the store
// and not overridden on the event
const (
	DefaultKillXp              = 10
	DefaultHeadshotXp          = 25
	DefaultDeathXp             = -5
	DefaultBaseParticipationXp = 100
)

// DefaultRules seeds the rule store on first run
func DefaultRules() []XpRule {
	return []XpRule{
		{ID: RuleKill, Name: "XP per Kill", Description: "XP awarded for each standard elimination.", Xp: DefaultKillXp},
		{ID: RuleHeadshot, Name: "XP per Headshot", Description: "Bonus XP for headshot eliminations. Added to kill XP.", Xp: DefaultHeadshotXp},
		{ID: RuleDeath, Name: "XP Loss per Death", Description: "XP deducted each time a player is eliminated.", Xp: DefaultDeathXp},
		{ID: RuleBaseParticipation, Name: "Base XP per Game", Description: "XP awarded to every player for completing a match.", Xp: DefaultBaseParticipationXp},
	}
}

// FallbackXp returns the hardcoded default for a rule id
func FallbackXp(id RuleID) int {
	switch id {
	case RuleKill:
		return DefaultKillXp
	case RuleHeadshot:
		return DefaultHeadshotXp
	case RuleDeath:
		return DefaultDeathXp
	case RuleBaseParticipation:
		return DefaultBaseParticipationXp
	default:
		return 0
	}
}
