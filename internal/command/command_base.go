package command

import (
	"github.com/bwmarrin/discordgo"

	"frostward/internal/config"
	"frostward/internal/games"
	"frostward/internal/storage"
	"frostward/internal/translate"
	"frostward/internal/verify"
)

// Command is the contract every bot command implements. Registration with
// Discord and dispatch are handled by the gateway adapter; commands only
// declare identity and execute.
type Command interface {
	Name() string
	Description() string
	Category() string
	Run(ctx interface{}) error
}

// SlashProvider is implemented by commands exposed as slash commands.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// ComponentHandler is implemented by commands that own message components
// (buttons). Components are routed by custom ID prefix: a command receives
// every component whose custom ID starts with its name.
type ComponentHandler interface {
	Component(ctx *ComponentContext) error
}

// ModalHandler is implemented by commands that own modal forms, routed the
// same way as components.
type ModalHandler interface {
	Modal(ctx *ModalContext) error
}

// PermissionRequirer lets a command demand guild permissions. The member
// needs at least one of the returned permissions.
type PermissionRequirer interface {
	UserPermissions() []int64
}

// OpsReporter surfaces boundary failures (role mutations, sends) to the
// operational log channel. Implemented by the gateway adapter.
type OpsReporter interface {
	ReportFailure(op, userID string, err error)
}

// Deps is everything a command may need beyond the session, injected by the
// adapter at dispatch time.
type Deps struct {
	Store      *storage.Storage
	Cfg        *config.Config
	Guild      *config.Guild
	Translator *translate.Translator
	Resolver   *verify.Resolver
	Guess      *games.GuessManager
	Ops        OpsReporter
}

// Fixed custom IDs for the persistent verification UI. They are stable
// across restarts so buttons on old messages keep working.
const (
	VerifyButtonID = "verify_start"
	VerifyModalID  = "verify_form"
)

type SlashContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Deps    *Deps
}

type ComponentContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Deps    *Deps
}

type ModalContext struct {
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Deps    *Deps
}
