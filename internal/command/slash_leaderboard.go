package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

type LeaderboardCommand struct{}

func (c *LeaderboardCommand) Name() string         { return "leaderboard" }
func (c *LeaderboardCommand) Description() string  { return "Chi mi ha insegnato di più" }
func (c *LeaderboardCommand) Aliases() []string    { return []string{} }
func (c *LeaderboardCommand) Category() string     { return "🌱 Crescita" }
func (c *LeaderboardCommand) RequireTrusted() bool { return false }
func (c *LeaderboardCommand) RequireCreator() bool { return false }

func (c *LeaderboardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LeaderboardCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	top := slash.Store.TopTeachers(10)
	if len(top) == 0 {
		return respond(slash, "🌱 Nessuno mi ha ancora insegnato niente...")
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var b strings.Builder
	for i, p := range top {
		marker := fmt.Sprintf("%d.", i+1)
		if i < len(medals) {
			marker = medals[i]
		}
		fmt.Fprintf(&b, "%s **%s** — %d punti (livello %d)\n", marker, p.Username, p.Points, mind.UserLevel(p.Points))
	}
	e := newEmbed("🏆 I miei maestri").SetDescription(b.String())
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&LeaderboardCommand{}, WithBlacklistCheck(), WithCommandLog()))
}
