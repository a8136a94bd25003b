package main

import (
	"log"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/blackjack/config"
	"github.com/lazharichir/blackjack/console"
	"github.com/lazharichir/blackjack/events"
	"github.com/lazharichir/blackjack/table"
)

const rulesText = `Try to get as close to 21 without going over.
Kings, Queens, and Jacks are worth 10 points.
Aces are worth 1 or 11 points.
Cards 2 through 10 are worth their face value.
(H)it to take another card.
(S)tand to stop taking cards.
On your first play, you can (D)ouble down to increase your bet
but must hit exactly one more time before standing.
In case of a tie, the bet is returned to the player.
The dealer stops hitting at 17.
This game does not account for naturals, splitting, or any
kind of insurance.`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgLightWhite.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println("Welcome to my blackjack table!")
	pterm.DefaultBox.WithTitle("GAME RULES").Println(rulesText)

	ui := console.New()
	name := ui.AskName()
	funds := ui.AskAmount("How much money are you playing with today (in dollars)?", cfg.MinBet)
	pterm.Info.Printfln("Best of luck, %s!", name)

	rules := table.Rules{
		MinBet:         cfg.MinBet,
		DealerStandsAt: cfg.DealerStandsAt,
		NumDecks:       cfg.NumDecks,
	}
	session := table.NewSession(name, funds, rules, ui, ui)

	store := events.NewInMemoryEventStore()
	session.RegisterEventHandler(func(event events.Event) {
		store.Append(event)
	})
	if cfg.Debug {
		pterm.EnableDebugMessages()
		session.RegisterEventHandler(func(event events.Event) {
			pterm.Debug.Println(event.Name())
			litter.D(event)
		})
	}

	if err := session.Run(); err != nil {
		log.Fatalf("Session failed: %v", err)
	}

	pterm.Println("Thanks for playing!")
}
