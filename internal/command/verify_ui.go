package command

import "github.com/bwmarrin/discordgo"

// Field custom IDs inside the verification modal.
const (
	VerifyFieldServer       = "server_number"
	VerifyFieldPlayerID     = "player_id"
	VerifyFieldAllianceRank = "alliance_rank"
	VerifyFieldLanguage     = "language"
	VerifyFieldAgeGroup     = "age_group"
)

// VerifyPromptComponents builds the persistent button row posted in the
// verify channel. The fixed custom ID keeps buttons on old messages working
// across restarts.
func VerifyPromptComponents() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "Start Verification ✅",
					Style:    discordgo.PrimaryButton,
					CustomID: VerifyButtonID,
				},
			},
		},
	}
}

// VerifyModalData builds the application form. Discord caps modals at five
// inputs, so alliance and rank share a field and are split on submission.
func VerifyModalData() *discordgo.InteractionResponseData {
	input := func(id, label, placeholder string, maxLen int) discordgo.MessageComponent {
		return discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    id,
					Label:       label,
					Style:       discordgo.TextInputShort,
					Placeholder: placeholder,
					Required:    true,
					MaxLength:   maxLen,
				},
			},
		}
	}

	return &discordgo.InteractionResponseData{
		CustomID: VerifyModalID,
		Title:    "Server Application",
		Components: []discordgo.MessageComponent{
			input(VerifyFieldServer, "What server are you on?", "Example: 123", 10),
			input(VerifyFieldPlayerID, "Your player ID", "Numbers only", 30),
			input(VerifyFieldAllianceRank, "Alliance and rank", "e.g. BTK R4", 20),
			input(VerifyFieldLanguage, "Main language", "English / French / Portuguese / ...", 30),
			input(VerifyFieldAgeGroup, "Age group (under 19 or 19+)", "under 19 or 19+", 10),
		},
	}
}
