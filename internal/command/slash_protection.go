package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

type ProtectCommand struct{}

func (c *ProtectCommand) Name() string         { return "proteggi_insegnamento" }
func (c *ProtectCommand) Description() string  { return "Proteggi un insegnamento dalle modifiche" }
func (c *ProtectCommand) Aliases() []string    { return []string{} }
func (c *ProtectCommand) Category() string     { return "🛡️ Protezione" }
func (c *ProtectCommand) RequireTrusted() bool { return false }
func (c *ProtectCommand) RequireCreator() bool { return true }

func (c *ProtectCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("insegnamento", "L'insegnamento da proteggere", true),
			stringOption("motivo", "Perché va protetto", false),
		},
	}
}

func (c *ProtectCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	content := slash.Option("insegnamento")
	if content == "" {
		return respondEphemeral(slash, "💭 Cosa devo proteggere?")
	}
	reason := slash.Option("motivo")
	if reason == "" {
		reason = "Protetto da " + slash.Username()
	}
	slash.Store.ProtectTeaching(content, reason)
	return respond(slash, "🛡️ Lo custodirò. Nessuno potrà togliermelo.")
}

type UnprotectCommand struct{}

func (c *UnprotectCommand) Name() string         { return "rimuovi_protezione" }
func (c *UnprotectCommand) Description() string  { return "Togli la protezione da un insegnamento" }
func (c *UnprotectCommand) Aliases() []string    { return []string{} }
func (c *UnprotectCommand) Category() string     { return "🛡️ Protezione" }
func (c *UnprotectCommand) RequireTrusted() bool { return false }
func (c *UnprotectCommand) RequireCreator() bool { return true }

func (c *UnprotectCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("insegnamento", "L'insegnamento da liberare", true),
		},
	}
}

func (c *UnprotectCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	content := slash.Option("insegnamento")
	if !slash.Store.UnprotectTeaching(content) {
		return respondEphemeral(slash, "🤔 Non trovo quell'insegnamento tra quelli protetti.")
	}
	return respond(slash, "🕊️ Va bene. Quell'insegnamento ora può cambiare con me.")
}

type BlockUserCommand struct{}

func (c *BlockUserCommand) Name() string         { return "blocca_utente" }
func (c *BlockUserCommand) Description() string  { return "Chiedimi di non ascoltare più qualcuno" }
func (c *BlockUserCommand) Aliases() []string    { return []string{} }
func (c *BlockUserCommand) Category() string     { return "🛡️ Protezione" }
func (c *BlockUserCommand) RequireTrusted() bool { return false }
func (c *BlockUserCommand) RequireCreator() bool { return true }

func (c *BlockUserCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			userOption("utente", "Chi non devo più ascoltare", true),
			stringOption("motivo", "Perché", false),
		},
	}
}

func (c *BlockUserCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	u := slash.UserOption("utente")
	if u == nil {
		return respondEphemeral(slash, "🤔 Non ho capito di chi parli.")
	}
	if !slash.Store.BlockUser(u.ID, slash.Option("motivo")) {
		return respondEphemeral(slash, "💭 Lo sto già ignorando.")
	}
	return respondEphemeral(slash, fmt.Sprintf("🚫 D'accordo. Non ascolterò più %s.", u.Username))
}

type UnblockUserCommand struct{}

func (c *UnblockUserCommand) Name() string         { return "sblocca_utente" }
func (c *UnblockUserCommand) Description() string  { return "Dammi il permesso di riascoltare qualcuno" }
func (c *UnblockUserCommand) Aliases() []string    { return []string{} }
func (c *UnblockUserCommand) Category() string     { return "🛡️ Protezione" }
func (c *UnblockUserCommand) RequireTrusted() bool { return false }
func (c *UnblockUserCommand) RequireCreator() bool { return true }

func (c *UnblockUserCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			userOption("utente", "Chi posso riascoltare", true),
		},
	}
}

func (c *UnblockUserCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	u := slash.UserOption("utente")
	if u == nil {
		return respondEphemeral(slash, "🤔 Non ho capito di chi parli.")
	}
	if !slash.Store.UnblockUser(u.ID) {
		return respondEphemeral(slash, "💭 Ma io ascolto già quella persona.")
	}
	return respondEphemeral(slash, fmt.Sprintf("🕊️ Va bene, tornerò ad ascoltare %s.", u.Username))
}

func init() {
	Register(ApplyMiddlewares(&ProtectCommand{}, WithCreatorOnly(), WithCommandLog()))
	Register(ApplyMiddlewares(&UnprotectCommand{}, WithCreatorOnly(), WithCommandLog()))
	Register(ApplyMiddlewares(&BlockUserCommand{}, WithCreatorOnly(), WithCommandLog()))
	Register(ApplyMiddlewares(&UnblockUserCommand{}, WithCreatorOnly(), WithCommandLog()))
}
