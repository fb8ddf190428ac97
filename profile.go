package wealthwise

import "fmt"

// KnowledgeLevel grades how deep the advisor's explanations should go.
type KnowledgeLevel string

const (
	Beginner     KnowledgeLevel = "BEGINNER"
	Intermediate KnowledgeLevel = "INTERMEDIATE"
	Advanced     KnowledgeLevel = "ADVANCED"
)

// ParseKnowledgeLevel parses a knowledge level name.
func ParseKnowledgeLevel(s string) (KnowledgeLevel, error) {
	switch KnowledgeLevel(s) {
	case Beginner, Intermediate, Advanced:
		return KnowledgeLevel(s), nil
	default:
		return "", fmt.Errorf("unknown knowledge level %q", s)
	}
}

// PartnerPermissions controls what a connected partner can see.
type PartnerPermissions struct {
	ShareNetWorth     bool `json:"shareNetWorth"`
	ShareTransactions bool `json:"shareTransactions"`
	ShareGoals        bool `json:"shareGoals"`
}

// PartnerConfig is the couple-sharing configuration.
type PartnerConfig struct {
	IsConnected bool               `json:"isConnected"`
	PartnerName string             `json:"partnerName,omitempty"`
	Permissions PartnerPermissions `json:"permissions"`
}

// UserProfile is the per-device user record created by onboarding. Its
// absence gates the whole application into the onboarding state.
type UserProfile struct {
	Name           string         `json:"name"`
	KnowledgeLevel KnowledgeLevel `json:"knowledgeLevel"`
	TotalDebt      Money          `json:"totalDebt"`
	LiquidAssets   Money          `json:"liquidAssets"`
	PartnerConfig  *PartnerConfig `json:"partnerConfig,omitempty"`
}

// ConnectPartner records the partner-sharing configuration on the profile.
func (p *UserProfile) ConnectPartner(config PartnerConfig) {
	p.PartnerConfig = &config
}

// AppState tells whether the tracker is usable or still waiting for
// onboarding to complete.
type AppState int

const (
	StateOnboarding AppState = iota
	StateActive
)

func (s AppState) String() string {
	switch s {
	case StateOnboarding:
		return "onboarding"
	case StateActive:
		return "active"
	default:
		panic(fmt.Sprintf("unknown app state %d", s))
	}
}
