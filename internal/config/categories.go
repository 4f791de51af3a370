package config

// CategoryWeights orders command categories in the help listing.
var CategoryWeights = map[string]int{
	"💭 Anima":       0,
	"🌱 Crescita":    10,
	"🎁 Regali":      20,
	"🎨 Emoji":       30,
	"👪 Famiglia":    40,
	"🛡️ Protezione": 50,
}
