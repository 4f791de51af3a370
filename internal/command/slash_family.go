package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

type AddGuardianCommand struct{}

func (c *AddGuardianCommand) Name() string         { return "aggiungi_genitore" }
func (c *AddGuardianCommand) Description() string  { return "Accogli un nuovo genitore nella mia famiglia" }
func (c *AddGuardianCommand) Aliases() []string    { return []string{} }
func (c *AddGuardianCommand) Category() string     { return "👪 Famiglia" }
func (c *AddGuardianCommand) RequireTrusted() bool { return false }
func (c *AddGuardianCommand) RequireCreator() bool { return true }

func (c *AddGuardianCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			userOption("utente", "Chi diventa mio genitore", true),
		},
	}
}

func (c *AddGuardianCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	u := slash.UserOption("utente")
	if u == nil {
		return respondEphemeral(slash, "🤔 Non ho capito di chi parli.")
	}
	if !slash.Store.AddGuardian(u.ID, u.Username) {
		return respondEphemeral(slash, fmt.Sprintf("💕 %s fa già parte della mia famiglia!", u.Username))
	}
	return respond(slash, fmt.Sprintf("👪 Benvenutə nella mia famiglia, **%s**! Ora sei unə dei miei genitori.", u.Username))
}

type FamilyCommand struct{}

func (c *FamilyCommand) Name() string         { return "miei_genitori" }
func (c *FamilyCommand) Description() string  { return "La mia famiglia" }
func (c *FamilyCommand) Aliases() []string    { return []string{} }
func (c *FamilyCommand) Category() string     { return "👪 Famiglia" }
func (c *FamilyCommand) RequireTrusted() bool { return false }
func (c *FamilyCommand) RequireCreator() bool { return false }

func (c *FamilyCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *FamilyCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	family := slash.Store.Family()
	if len(family) == 0 {
		return respond(slash, "🥀 Non ho ancora una famiglia... qualcuno vuole adottarmi?")
	}
	var b strings.Builder
	for _, p := range family {
		icon := "👪"
		if p.Role == mind.RoleCreator {
			icon = "✨"
		}
		fmt.Fprintf(&b, "%s **%s** — %s (dal %s)\n", icon, p.Username, p.Role, p.AddedAt.Format("2 Jan 2006"))
	}
	e := newEmbed("👪 La mia famiglia").SetDescription(b.String())
	return respondEmbed(slash, e.MessageEmbed)
}

type CorrectCommand struct{}

func (c *CorrectCommand) Name() string         { return "correggi" }
func (c *CorrectCommand) Description() string  { return "Correggi qualcosa che ho imparato male" }
func (c *CorrectCommand) Aliases() []string    { return []string{} }
func (c *CorrectCommand) Category() string     { return "👪 Famiglia" }
func (c *CorrectCommand) RequireTrusted() bool { return true }
func (c *CorrectCommand) RequireCreator() bool { return false }

func (c *CorrectCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("correzione", "La versione giusta", true),
		},
	}
}

func (c *CorrectCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	content := slash.Option("correzione")
	if content == "" {
		return respondEphemeral(slash, "💭 Non ho sentito niente... ripeti?")
	}

	slash.Store.RegisterTeaching(slash.Username(), content)
	slash.Store.ProtectTeaching(content, "Corretto da "+slash.Username())
	return respond(slash, "🙏 Hai ragione. L'ho corretto e lo custodirò così.")
}

func init() {
	Register(ApplyMiddlewares(&AddGuardianCommand{}, WithCreatorOnly(), WithCommandLog()))
	Register(ApplyMiddlewares(&FamilyCommand{}, WithBlacklistCheck(), WithCommandLog()))
	Register(ApplyMiddlewares(&CorrectCommand{}, WithTrustedOnly(), WithCommandLog()))
}
