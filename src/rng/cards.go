package rng

import "errors"

type Card struct {
	Value string `json:"value"`
	Suit  string `json:"suit"`
}

func AddDeck(numDecks int, jokers bool) []Card {
	perDeck := 52
	if jokers {
		perDeck += 2
	}
	deck := make([]Card, 0, numDecks*perDeck)

	suits := []string{"Hearts", "Diamonds", "Clubs", "Spades"}
	values := []string{"Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

	for d := 0; d < numDecks; d++ {
		for _, suit := range suits {
			for _, v := range values {
				deck = append(deck, Card{Value: v, Suit: suit})
			}
		}
		if jokers {
			deck = append(deck, Card{Value: "Joker", Suit: "Red"})
			deck = append(deck, Card{Value: "Joker", Suit: "Black"})
		}
	}
	return deck
}

func RemoveCard(deck []Card, index int) []Card {
	return append(deck[:index], deck[index+1:]...)
}

// Draw removes n cards from deck at random, without replacement.
func Draw(d Drawer, deck []Card, n int) ([]Card, error) {
	if n > len(deck) {
		return nil, errors.New("there are more cards to pick than cards in the deck")
	}

	picked := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		index := int32(0)
		if len(deck) > 1 {
			var err error
			index, err = UniformInt32(d, 0, len(deck)-1)
			if err != nil {
				return nil, err
			}
		}
		picked = append(picked, deck[int(index)])
		deck = RemoveCard(deck, int(index))
	}
	return picked, nil
}
