package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

// SecretsCommand lists the hidden-command catalog: full cards for what
// the caller has already unlocked, hints for the rest.
type SecretsCommand struct{}

func (c *SecretsCommand) Name() string         { return "segreti" }
func (c *SecretsCommand) Description() string  { return "I segreti che hai scoperto con me" }
func (c *SecretsCommand) Aliases() []string    { return []string{} }
func (c *SecretsCommand) Category() string     { return "💭 Anima" }
func (c *SecretsCommand) RequireTrusted() bool { return false }
func (c *SecretsCommand) RequireCreator() bool { return false }

func (c *SecretsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *SecretsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	found := 0
	var lines []string
	for _, hc := range mind.HiddenCommands() {
		if slash.Store.HasRevealed(slash.UserID(), hc.Name) {
			found++
			lines = append(lines, fmt.Sprintf("%s **%s** — %s (+%d punti)", hc.Icon, hc.Title, hc.Description, hc.Points))
		} else {
			lines = append(lines, fmt.Sprintf("🔒 ??? — *%s*", hc.Hint))
		}
	}

	e := newEmbed("🗝️ I nostri segreti").
		SetDescription(strings.Join(lines, "\n")).
		AddField("Scoperti", fmt.Sprintf("%d su %d", found, len(mind.HiddenCommands())))
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&SecretsCommand{}, WithBlacklistCheck(), WithCommandLog()))
}
