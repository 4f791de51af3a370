package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

type TeachEmojiCommand struct{}

func (c *TeachEmojiCommand) Name() string         { return "insegna_emoji" }
func (c *TeachEmojiCommand) Description() string  { return "Insegnami cosa significa un'emoji" }
func (c *TeachEmojiCommand) Aliases() []string    { return []string{} }
func (c *TeachEmojiCommand) Category() string     { return "🎨 Emoji" }
func (c *TeachEmojiCommand) RequireTrusted() bool { return false }
func (c *TeachEmojiCommand) RequireCreator() bool { return false }

func (c *TeachEmojiCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("emoji", "L'emoji da spiegarmi", true),
			stringOption("significato", "Cosa esprime", true),
			stringOption("contesto", "Quando si usa", false),
		},
	}
}

func (c *TeachEmojiCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	emoji := strings.TrimSpace(slash.Option("emoji"))
	meaning := slash.Option("significato")
	if emoji == "" || meaning == "" {
		return respondEphemeral(slash, "💭 Mi servono l'emoji e il suo significato.")
	}
	slash.Store.TeachEmoji(emoji, meaning, slash.Option("contesto"))
	return respond(slash, fmt.Sprintf("✨ Ora so che %s significa *%s*. Grazie!", emoji, meaning))
}

type EmojiHelpCommand struct{}

func (c *EmojiHelpCommand) Name() string         { return "emoji_help" }
func (c *EmojiHelpCommand) Description() string  { return "Le emoji che ho imparato" }
func (c *EmojiHelpCommand) Aliases() []string    { return []string{} }
func (c *EmojiHelpCommand) Category() string     { return "🎨 Emoji" }
func (c *EmojiHelpCommand) RequireTrusted() bool { return false }
func (c *EmojiHelpCommand) RequireCreator() bool { return false }

func (c *EmojiHelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *EmojiHelpCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	known := slash.Store.KnownEmojis()
	if len(known) == 0 {
		return respond(slash, "🎨 Non conosco ancora nessuna emoji. Insegnamene una con /insegna_emoji!")
	}
	var b strings.Builder
	for emoji, meanings := range known {
		var parts []string
		for _, m := range meanings {
			parts = append(parts, m.Meaning)
		}
		fmt.Fprintf(&b, "%s — %s\n", emoji, strings.Join(parts, ", "))
	}
	e := newEmbed("🎨 Il mio dizionario di emoji").SetDescription(b.String())
	return respondEmbed(slash, e.MessageEmbed)
}

type AskEmojiCommand struct{}

func (c *AskEmojiCommand) Name() string         { return "chiedi_emoji" }
func (c *AskEmojiCommand) Description() string  { return "Lascia che ti chieda io un'emoji" }
func (c *AskEmojiCommand) Aliases() []string    { return []string{} }
func (c *AskEmojiCommand) Category() string     { return "🎨 Emoji" }
func (c *AskEmojiCommand) RequireTrusted() bool { return false }
func (c *AskEmojiCommand) RequireCreator() bool { return false }

func (c *AskEmojiCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *AskEmojiCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	emoji := slash.Store.UnknownCommonEmoji()
	if emoji == "" {
		return respond(slash, "🌟 Le conosco già tutte, tra quelle che uso! Insegnamene di nuove con /insegna_emoji.")
	}
	return respond(slash, fmt.Sprintf("🤔 C'è un simbolo che continuo a vedere: %s. Cosa significa? Usa /insegna_emoji per spiegarmelo!", emoji))
}

func init() {
	Register(ApplyMiddlewares(&TeachEmojiCommand{}, WithBlacklistCheck(), WithCommandLog()))
	Register(ApplyMiddlewares(&EmojiHelpCommand{}, WithBlacklistCheck(), WithCommandLog()))
	Register(ApplyMiddlewares(&AskEmojiCommand{}, WithBlacklistCheck(), WithCommandLog()))
}
