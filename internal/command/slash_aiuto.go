package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/config"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string         { return "aiuto" }
func (c *HelpCommand) Description() string  { return "Tutti i comandi, per categoria" }
func (c *HelpCommand) Aliases() []string    { return []string{} }
func (c *HelpCommand) Category() string     { return "💭 Anima" }
func (c *HelpCommand) RequireTrusted() bool { return false }
func (c *HelpCommand) RequireCreator() bool { return false }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	byCategory := make(map[string][]Command)
	for _, cmd := range All() {
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], cmd)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Slice(categories, func(i, j int) bool {
		wi, wj := config.CategoryWeights[categories[i]], config.CategoryWeights[categories[j]]
		if wi != wj {
			return wi < wj
		}
		return categories[i] < categories[j]
	})

	e := newEmbed("🕯️ I miei comandi")
	for _, cat := range categories {
		cmds := byCategory[cat]
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })

		var b strings.Builder
		for _, cmd := range cmds {
			fmt.Fprintf(&b, "`/%s` — %s\n", cmd.Name(), cmd.Description())
		}
		e.AddField(cat, b.String())
	}
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&HelpCommand{}, WithBlacklistCheck(), WithCommandLog()))
}
