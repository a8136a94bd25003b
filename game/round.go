package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lazharichir/blackjack/blackjack"
	"github.com/lazharichir/blackjack/cards"
	"github.com/lazharichir/blackjack/events"
)

// Phase represents the stage a betting round is in.
type Phase string

const (
	PhaseBetting    Phase = "betting"
	PhaseDealt      Phase = "dealt"
	PhasePlayerTurn Phase = "player_turn"
	PhaseDealerTurn Phase = "dealer_turn"
	PhaseSettled    Phase = "settled"
)

// Result is what one round hands back to the session.
type Result struct {
	Outcome blackjack.Outcome
	Bet     decimal.Decimal
	Delta   decimal.Decimal
	Quit    bool
}

// RoundConfig carries everything a round needs from its session. The
// bankroll is a snapshot: a round never mutates it, it only reports the
// signed change in its Result.
type RoundConfig struct {
	SessionID      string
	Number         int
	Bankroll       decimal.Decimal
	MinBet         decimal.Decimal
	DealerStandsAt int
	Shoe           *cards.Shoe
	Input          Input
	Display        Display
	Events         events.EventHandler
}

// Round drives a single betting round through its phases: bet
// collection, the initial deal, the player's turn, the dealer's
// automated turn, settlement and discard.
type Round struct {
	ID         string
	Bet        decimal.Decimal
	PlayerHand cards.HeldStack
	DealerHand cards.HeldStack

	cfg   RoundConfig
	phase Phase
}

// NewRound creates a round in the betting phase.
func NewRound(cfg RoundConfig) *Round {
	return &Round{
		ID:    uuid.NewString(),
		cfg:   cfg,
		phase: PhaseBetting,
	}
}

// Phase returns the round's current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Play runs the round to completion and returns its settlement. The
// only non-nil error is a broken shoe, which is fatal to the session.
func (r *Round) Play() (Result, error) {
	r.emit(events.RoundStarted{SessionID: r.cfg.SessionID, RoundID: r.ID, Number: r.cfg.Number})

	if quit := r.collectBet(); quit {
		return Result{Quit: true}, nil
	}
	if err := r.deal(); err != nil {
		return Result{}, err
	}
	quit, err := r.playerTurn()
	if err != nil {
		return Result{}, err
	}
	if quit {
		return Result{Quit: true}, nil
	}
	if err := r.dealerTurn(); err != nil {
		return Result{}, err
	}
	return r.settle(), nil
}

func (r *Round) emit(event events.Event) {
	if r.cfg.Events != nil {
		r.cfg.Events(event)
	}
}

func (r *Round) transitionTo(phase Phase) {
	previous := r.phase
	r.phase = phase
	r.emit(events.PhaseChanged{
		SessionID:     r.cfg.SessionID,
		RoundID:       r.ID,
		PreviousPhase: string(previous),
		NewPhase:      string(phase),
	})
}

// checkBet enforces a betting range. The wrapped ErrInvalidInput is
// recovered locally by re-prompting and never reaches the session.
func checkBet(amount, min, max decimal.Decimal) error {
	if amount.LessThan(min) || amount.GreaterThan(max) {
		return fmt.Errorf("%w: bet $%s outside [$%s, $%s]", ErrInvalidInput,
			amount.StringFixed(2), min.StringFixed(2), max.StringFixed(2))
	}
	return nil
}

// collectBet asks for a bet in [minBet, bankroll]. The collaborator
// owns re-prompting; the engine still refuses anything out of range.
func (r *Round) collectBet() bool {
	for {
		bet, quit := r.cfg.Input.AskBet(r.cfg.MinBet, r.cfg.Bankroll)
		if quit {
			return true
		}
		if err := checkBet(bet, r.cfg.MinBet, r.cfg.Bankroll); err != nil {
			r.cfg.Display.ShowMessage("Please enter an amount in the specified range.")
			continue
		}
		r.Bet = bet
		r.emit(events.BetPlaced{SessionID: r.cfg.SessionID, RoundID: r.ID, Amount: bet})
		return false
	}
}

// deal draws the opening hands from the shared shoe in fixed order:
// dealer, dealer, player, player. Only the dealer's first card is dealt
// face down.
func (r *Round) deal() error {
	r.transitionTo(PhaseDealt)

	draws := []struct {
		hand   *cards.HeldStack
		to     string
		faceUp bool
	}{
		{&r.DealerHand, "dealer", false},
		{&r.DealerHand, "dealer", true},
		{&r.PlayerHand, "player", true},
		{&r.PlayerHand, "player", true},
	}

	for _, draw := range draws {
		card, err := r.cfg.Shoe.Draw()
		if err != nil {
			return fmt.Errorf("initial deal: %w", err)
		}
		draw.hand.Add(cards.NewHeldCard(card, draw.faceUp))
		r.emit(events.CardDealt{
			SessionID: r.cfg.SessionID,
			RoundID:   r.ID,
			To:        draw.to,
			Card:      card,
			FaceUp:    draw.faceUp,
		})
	}

	r.cfg.Display.ShowMessage(fmt.Sprintf("Bet: $%s", r.Bet.StringFixed(2)))
	r.cfg.Display.ShowHands(r.DealerHand, r.PlayerHand, false)
	return nil
}

// playerTurn loops until the player stands, doubles down, busts or
// reaches 21.
func (r *Round) playerTurn() (quit bool, err error) {
	r.transitionTo(PhasePlayerTurn)

	for {
		total := blackjack.HandValue(r.PlayerHand.Cards())
		if blackjack.IsBust(total) {
			r.emit(events.PlayerBusted{SessionID: r.cfg.SessionID, RoundID: r.ID, Total: total})
			return false, nil
		}
		if total == blackjack.Target {
			// nothing can improve the hand
			return false, nil
		}

		switch r.askMove() {
		case MoveHit:
			if err := r.hit(); err != nil {
				return false, err
			}

		case MoveDouble:
			quit, err := r.doubleDown()
			if quit || err != nil {
				return quit, err
			}
			return false, nil

		case MoveStand:
			r.emit(events.PlayerStood{SessionID: r.cfg.SessionID, RoundID: r.ID, Total: total})
			return false, nil
		}
	}
}

// allowedMoves offers Hit and Stand always, and Double only on the
// initial two cards with funds beyond the current bet to raise with.
func (r *Round) allowedMoves() []Move {
	moves := []Move{MoveHit, MoveStand}
	if r.canDouble() {
		moves = append(moves, MoveDouble)
	}
	return moves
}

func (r *Round) canDouble() bool {
	return len(r.PlayerHand) == 2 && r.cfg.Bankroll.GreaterThan(r.Bet)
}

// validateMove rejects moves the current hand is not eligible for with
// a wrapped ErrIllegalMove.
func (r *Round) validateMove(move Move) error {
	for _, m := range r.allowedMoves() {
		if m == move {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrIllegalMove, move)
}

// askMove keeps asking until the collaborator returns a move the hand
// is eligible for. An illegal move is rejected at this boundary, never
// raised as a fault.
func (r *Round) askMove() Move {
	for {
		move := r.cfg.Input.AskMove(r.allowedMoves())
		if err := r.validateMove(move); err != nil {
			r.cfg.Display.ShowMessage("You can't do that right now.")
			continue
		}
		return move
	}
}

func (r *Round) hit() error {
	card, err := r.cfg.Shoe.Draw()
	if err != nil {
		return fmt.Errorf("player hit: %w", err)
	}
	r.PlayerHand.Add(cards.NewHeldCard(card, true))
	total := blackjack.HandValue(r.PlayerHand.Cards())
	r.emit(events.PlayerHit{SessionID: r.cfg.SessionID, RoundID: r.ID, Card: card, Total: total})
	r.cfg.Display.ShowMessage(fmt.Sprintf("You drew a %s of %s!", card.Value, card.Suit))
	r.cfg.Display.ShowHands(r.DealerHand, r.PlayerHand, false)
	return nil
}

// doubleDown raises the bet by up to min(bet, bankroll-bet), then
// forces exactly one card and ends the turn regardless of the total.
func (r *Round) doubleDown() (quit bool, err error) {
	maxRaise := r.Bet
	if spare := r.cfg.Bankroll.Sub(r.Bet); spare.LessThan(maxRaise) {
		maxRaise = spare
	}
	minRaise := r.cfg.MinBet
	if maxRaise.LessThan(minRaise) {
		minRaise = maxRaise
	}

	var raise decimal.Decimal
	for {
		amount, quit := r.cfg.Input.AskBet(minRaise, maxRaise)
		if quit {
			return true, nil
		}
		if err := checkBet(amount, minRaise, maxRaise); err != nil {
			r.cfg.Display.ShowMessage("Please enter an amount in the specified range.")
			continue
		}
		raise = amount
		break
	}

	r.Bet = r.Bet.Add(raise)
	r.emit(events.PlayerDoubledDown{SessionID: r.cfg.SessionID, RoundID: r.ID, Raise: raise, NewBet: r.Bet})
	r.cfg.Display.ShowMessage(fmt.Sprintf("Bet increased to $%s", r.Bet.StringFixed(2)))

	if err := r.hit(); err != nil {
		return false, err
	}
	if total := blackjack.HandValue(r.PlayerHand.Cards()); blackjack.IsBust(total) {
		r.emit(events.PlayerBusted{SessionID: r.cfg.SessionID, RoundID: r.ID, Total: total})
	}
	return false, nil
}

// dealerTurn reveals the hole card and draws until the dealer reaches
// the stand threshold or busts. It runs even after a player bust, so
// the table always sees the dealer finish.
func (r *Round) dealerTurn() error {
	r.transitionTo(PhaseDealerTurn)
	r.cfg.Input.WaitForAcknowledgement("Dealer is up next! Press Enter when ready.")

	r.DealerHand[0] = r.DealerHand[0].Flip()
	r.emit(events.DealerRevealed{
		SessionID: r.cfg.SessionID,
		RoundID:   r.ID,
		Card:      r.DealerHand[0].Card,
		Total:     blackjack.HandValue(r.DealerHand.Cards()),
	})
	r.cfg.Display.ShowHands(r.DealerHand, r.PlayerHand, true)

	// A bust total always clears the threshold, so this stops
	// immediately on a bust as well.
	for blackjack.HandValue(r.DealerHand.Cards()) < r.cfg.DealerStandsAt {
		r.cfg.Display.ShowMessage("Dealer hits...")
		card, err := r.cfg.Shoe.Draw()
		if err != nil {
			return fmt.Errorf("dealer hit: %w", err)
		}
		r.DealerHand.Add(cards.NewHeldCard(card, true))
		total := blackjack.HandValue(r.DealerHand.Cards())
		r.emit(events.DealerHit{SessionID: r.cfg.SessionID, RoundID: r.ID, Card: card, Total: total})
		r.cfg.Display.ShowHands(r.DealerHand, r.PlayerHand, true)
		r.cfg.Input.WaitForAcknowledgement("Press Enter to continue.")
	}

	return nil
}

// settle compares the final totals, reports the outcome and returns
// both hands to the shoe.
func (r *Round) settle() Result {
	r.transitionTo(PhaseSettled)

	playerTotal := blackjack.HandValue(r.PlayerHand.Cards())
	dealerTotal := blackjack.HandValue(r.DealerHand.Cards())
	outcome := blackjack.Settle(playerTotal, dealerTotal)

	switch {
	case outcome == blackjack.OutcomeWin && blackjack.IsBust(dealerTotal):
		r.cfg.Display.ShowMessage(fmt.Sprintf("Dealer busts! You win $%s!", r.Bet.StringFixed(2)))
	case outcome == blackjack.OutcomeWin:
		r.cfg.Display.ShowMessage(fmt.Sprintf("You won $%s!", r.Bet.StringFixed(2)))
	case outcome == blackjack.OutcomeLoss:
		r.cfg.Display.ShowMessage("You lost!")
	default:
		r.cfg.Display.ShowMessage("It's a tie -- bet is returned to you.")
	}

	r.emit(events.RoundSettled{
		SessionID:   r.cfg.SessionID,
		RoundID:     r.ID,
		Outcome:     string(outcome),
		Bet:         r.Bet,
		PlayerTotal: playerTotal,
		DealerTotal: dealerTotal,
	})

	r.cfg.Shoe.Discard(r.DealerHand.Cards()...)
	r.cfg.Shoe.Discard(r.PlayerHand.Cards()...)

	return Result{Outcome: outcome, Bet: r.Bet, Delta: outcome.Delta(r.Bet)}
}
