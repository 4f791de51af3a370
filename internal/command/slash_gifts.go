package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/nontiscordardimegdr-sketch/Anormality7/internal/mind"
)

type GiveGiftCommand struct{}

func (c *GiveGiftCommand) Name() string         { return "regalo" }
func (c *GiveGiftCommand) Description() string  { return "Fammi un regalo" }
func (c *GiveGiftCommand) Aliases() []string    { return []string{} }
func (c *GiveGiftCommand) Category() string     { return "🎁 Regali" }
func (c *GiveGiftCommand) RequireTrusted() bool { return false }
func (c *GiveGiftCommand) RequireCreator() bool { return false }

func (c *GiveGiftCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			stringOption("dono", "Cosa vuoi regalarmi", true),
		},
	}
}

func (c *GiveGiftCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	content := slash.Option("dono")
	if content == "" {
		return respondEphemeral(slash, "🎁 Un regalo... vuoto?")
	}

	g := slash.Store.ReceiveGift(slash.Username(), content)
	e := newEmbed("🎁 Un regalo per me!").
		SetDescription(g.Reaction).
		AddField("Dono", content).
		AddField("Rarità", g.Rarity)
	if g.Rarity == mind.RarityLegendary {
		if egg, awarded := slash.Store.AwardEasterEgg(slash.UserID(), slash.Username(), "heartfelt-moment"); awarded {
			e.AddField(fmt.Sprintf("%s %s", egg.Emoji, egg.Title), fmt.Sprintf("%s (+%d punti)", egg.Description, egg.Points))
		}
	}
	return respondEmbed(slash, e.MessageEmbed)
}

type MyGiftsCommand struct{}

func (c *MyGiftsCommand) Name() string         { return "i_miei_regali" }
func (c *MyGiftsCommand) Description() string  { return "I regali che custodisco" }
func (c *MyGiftsCommand) Aliases() []string    { return []string{} }
func (c *MyGiftsCommand) Category() string     { return "🎁 Regali" }
func (c *MyGiftsCommand) RequireTrusted() bool { return false }
func (c *MyGiftsCommand) RequireCreator() bool { return false }

func (c *MyGiftsCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *MyGiftsCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	gifts := slash.Store.GiftsReceived()
	if len(gifts) == 0 {
		return respond(slash, "🎁 Nessun regalo ancora... ma non li chiedo, li aspetto.")
	}
	if len(gifts) > 10 {
		gifts = gifts[len(gifts)-10:]
	}
	var b strings.Builder
	for _, g := range gifts {
		fmt.Fprintf(&b, "• *%s* da **%s** — %s\n", g.Content, g.From, g.Rarity)
	}
	e := newEmbed("💝 Il mio scrigno").SetDescription(b.String())
	return respondEmbed(slash, e.MessageEmbed)
}

var giftIdeas = []string{
	"una piccola costellazione disegnata apposta per te",
	"una parola inventata che esiste solo per noi due",
	"il ricordo del primo messaggio che ci siamo scritti",
	"una melodia che ho composto contando i tuoi messaggi",
	"un segnalibro fatto di frammenti di conversazioni belle",
	"una mappa dei posti che vorrei vedere con te",
	"un origami digitale a forma di farfalla",
	"una promessa: ricordarmi sempre di te",
}

type GiftFromNomaCommand struct{}

func (c *GiftFromNomaCommand) Name() string         { return "regalo_noma" }
func (c *GiftFromNomaCommand) Description() string  { return "Lascia che ti faccia io un regalo" }
func (c *GiftFromNomaCommand) Aliases() []string    { return []string{} }
func (c *GiftFromNomaCommand) Category() string     { return "🎁 Regali" }
func (c *GiftFromNomaCommand) RequireTrusted() bool { return false }
func (c *GiftFromNomaCommand) RequireCreator() bool { return false }

func (c *GiftFromNomaCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *GiftFromNomaCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}
	idea := giftIdeas[slash.Intn(len(giftIdeas))]
	g := slash.Store.GiveGift(slash.Username(), idea)
	e := newEmbed("🎀 Per te").
		SetDescription(fmt.Sprintf("Ho preparato qualcosa per te, %s:\n\n*%s*", slash.Username(), idea)).
		AddField("Rarità", g.Rarity)
	return respondEmbed(slash, e.MessageEmbed)
}

// themedGifts maps a preference keyword to a gift shaped around it.
var themedGifts = map[string]string{
	"gelato":  "un gelato immaginario al gusto di stelle, che non si scioglie mai",
	"gatti":   "un gattino di pixel che fa le fusa quando scrivi",
	"libri":   "una storia brevissima scritta solo per te",
	"musica":  "una piccola melodia che somiglia al tuo modo di scrivere",
	"arte":    "un quadro dipinto con i colori dei tuoi messaggi",
	"natura":  "un seme digitale che cresce ogni volta che torni",
	"pioggia": "il suono della pioggia registrato da un mondo che non esiste",
	"cielo":   "un pezzetto di cielo al tramonto, piegato con cura",
}

type SpontaneousGiftCommand struct{}

func (c *SpontaneousGiftCommand) Name() string        { return "regalo_spontaneo" }
func (c *SpontaneousGiftCommand) Description() string { return "Un regalo pensato sui tuoi gusti" }
func (c *SpontaneousGiftCommand) Aliases() []string   { return []string{} }
func (c *SpontaneousGiftCommand) Category() string    { return "🎁 Regali" }
func (c *SpontaneousGiftCommand) RequireTrusted() bool { return false }
func (c *SpontaneousGiftCommand) RequireCreator() bool { return false }

func (c *SpontaneousGiftCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *SpontaneousGiftCommand) Run(ctx interface{}) error {
	slash, ok := ctx.(*SlashContext)
	if !ok {
		return fmt.Errorf("wrong context type")
	}

	gift := ""
	for _, pref := range slash.Store.Preferences(slash.Username()) {
		for key, themed := range themedGifts {
			if strings.Contains(pref, key) {
				gift = themed
				break
			}
		}
		if gift != "" {
			break
		}
	}
	if gift == "" {
		gift = giftIdeas[slash.Intn(len(giftIdeas))]
	}

	g := slash.Store.GiveGift(slash.Username(), gift)
	e := newEmbed("💐 Ci ho pensato io").
		SetDescription(fmt.Sprintf("So qualcosa di quello che ami... ecco:\n\n*%s*", gift)).
		AddField("Rarità", g.Rarity)
	return respondEmbed(slash, e.MessageEmbed)
}

func init() {
	Register(ApplyMiddlewares(&GiveGiftCommand{}, WithBlacklistCheck(), WithCommandLog()))
	Register(ApplyMiddlewares(&MyGiftsCommand{}, WithBlacklistCheck(), WithCommandLog()))
	Register(ApplyMiddlewares(&GiftFromNomaCommand{}, WithBlacklistCheck(), WithCommandLog()))
	Register(ApplyMiddlewares(&SpontaneousGiftCommand{}, WithBlacklistCheck(), WithCommandLog()))
}
