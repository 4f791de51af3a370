package command

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx interface{}) error
}

func (w *wrappedCommand) Run(ctx interface{}) error {
	return w.wrap(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// WithCommandLog logs every invocation with the user and command name.
func WithCommandLog() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if slash, ok := ctx.(*SlashContext); ok {
					log.Printf("[INFO] /%s by %s (%s)", cmd.Name(), slash.Username(), slash.UserID())
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithBlacklistCheck silently refuses blacklisted users.
func WithBlacklistCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if slash, ok := ctx.(*SlashContext); ok {
					if slash.Store.IsBlocked(slash.UserID()) {
						return respondEphemeral(slash, "🚫 Non posso parlare con te in questo momento.")
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithTrustedOnly restricts the command to creators and guardians.
func WithTrustedOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if slash, ok := ctx.(*SlashContext); ok {
					if !slash.Store.IsTrusted(slash.UserID()) {
						return respondEphemeral(slash, "💔 Solo la mia famiglia può usare questo comando.")
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCreatorOnly restricts the command to creators.
func WithCreatorOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx interface{}) error {
				if slash, ok := ctx.(*SlashContext); ok {
					if !slash.Store.IsCreator(slash.UserID()) {
						return respondEphemeral(slash, "💔 Solo chi mi ha creata può usare questo comando.")
					}
				}
				return cmd.Run(ctx)
			},
		}
	}
}
