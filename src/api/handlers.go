package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lost-woods/rngfacade/src/rng"
)

func (h *Handlers) RandomBytes(c *gin.Context) {
	const maxSize = 256

	sizeVar := c.DefaultQuery("size", "1")
	size, err := strconv.Atoi(sizeVar)
	if err != nil || size < 1 || size > maxSize {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Size must be an integer between 1 and %d.", maxSize))
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		buf := make([]byte, size)
		if err := h.r.TryFillBytes(buf); err != nil {
			h.log.Errorw("byte draw failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching random bytes."
		}

		hex := fmt.Sprintf("%x", buf)
		return hex, gin.H{"bytes": hex, "size": size}, 0, ""
	})
}

func (h *Handlers) RandomNumber(c *gin.Context) {
	min, err := strconv.Atoi(c.DefaultQuery("min", "1"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid min value.")
		return
	}

	max, err := strconv.Atoi(c.DefaultQuery("max", "100"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid max value.")
		return
	}

	if err := rng.CheckRange(min, max); err != nil {
		responder{c}.err(http.StatusBadRequest, err.Error())
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		n, err := rng.UniformInt32(h.r, min, max)
		if err != nil {
			h.log.Errorw("number draw failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching a random number."
		}

		return fmt.Sprintf("%d", n),
			gin.H{"number": n, "min": min, "max": max},
			0, ""
	})
}

func (h *Handlers) RandomU32(c *gin.Context) {
	h.handleRNG(c, func() (string, gin.H, int, string) {
		v, err := h.r.NextU32()
		if err != nil {
			h.log.Errorw("u32 draw failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching a random number."
		}
		return strconv.FormatUint(uint64(v), 10), gin.H{"u32": v}, 0, ""
	})
}

func (h *Handlers) RandomU64(c *gin.Context) {
	h.handleRNG(c, func() (string, gin.H, int, string) {
		v, err := h.r.NextU64()
		if err != nil {
			h.log.Errorw("u64 draw failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching a random number."
		}
		// JSON numbers lose precision past 2^53, so u64 travels as a string
		s := strconv.FormatUint(v, 10)
		return s, gin.H{"u64": s}, 0, ""
	})
}

func (h *Handlers) RandomNonce(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("size", "16"))
	if err != nil || size < 1 || size > rng.MaxNonceSize {
		responder{c}.err(http.StatusBadRequest,
			fmt.Sprintf("Size must be an integer between 1 and %d.", rng.MaxNonceSize))
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		b, err := rng.Nonce(h.r, size)
		if err != nil {
			h.log.Errorw("nonce draw failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching a nonce."
		}
		hex := fmt.Sprintf("%x", b)
		return hex, gin.H{"nonce": hex, "size": size}, 0, ""
	})
}

func (h *Handlers) RandomCards(c *gin.Context) {
	numDecks, err := strconv.Atoi(c.DefaultQuery("decks", "1"))
	if err != nil || numDecks < 1 || numDecks > 100 {
		responder{c}.err(http.StatusBadRequest, "Invalid deck count.")
		return
	}

	jokers, err := strconv.ParseBool(c.DefaultQuery("jokers", "false"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid jokers flag.")
		return
	}

	numCards, err := strconv.Atoi(c.DefaultQuery("cards", "1"))
	if err != nil || numCards < 1 {
		responder{c}.err(http.StatusBadRequest, "Invalid card count.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		deck := rng.AddDeck(numDecks, jokers)
		if numCards > len(deck) {
			return "", nil, http.StatusBadRequest,
				"There are more cards to pick than cards in the deck."
		}

		picked, err := rng.Draw(h.r, deck, numCards)
		if err != nil {
			h.log.Errorw("card draw failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching a random card."
		}

		lines := make([]string, 0, len(picked))
		for _, card := range picked {
			lines = append(lines, card.Value+" of "+card.Suit)
		}

		return strings.Join(lines, "\n"), gin.H{
			"decks":  numDecks,
			"jokers": jokers,
			"cards":  numCards,
			"drawn":  picked,
		}, 0, ""
	})
}

func (h *Handlers) RandomStrings(c *gin.Context) {
	const maxSize = 256

	size, err := strconv.Atoi(c.DefaultQuery("size", "10"))
	if err != nil || size < 1 || size > maxSize {
		responder{c}.err(http.StatusBadRequest, "Invalid size.")
		return
	}

	lowers, err := strconv.ParseBool(c.DefaultQuery("lowercase", "true"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid lowercase flag.")
		return
	}

	uppers, err := strconv.ParseBool(c.DefaultQuery("uppercase", "true"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid uppercase flag.")
		return
	}

	numbers, err := strconv.ParseBool(c.DefaultQuery("numbers", "true"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid numbers flag.")
		return
	}

	symbols, err := strconv.ParseBool(c.DefaultQuery("symbols", "true"))
	if err != nil {
		responder{c}.err(http.StatusBadRequest, "Invalid symbols flag.")
		return
	}

	if !lowers && !uppers && !numbers && !symbols {
		responder{c}.err(http.StatusBadRequest, "At least one flag must be set.")
		return
	}

	h.handleRNG(c, func() (string, gin.H, int, string) {
		charset := rng.BuildCharset(lowers, uppers, numbers, symbols)
		s, err := rng.RandomString(h.r, charset, size)
		if err != nil {
			h.log.Errorw("string draw failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching a random character."
		}

		return s, gin.H{
			"string":    s,
			"size":      size,
			"lowercase": lowers,
			"uppercase": uppers,
			"numbers":   numbers,
			"symbols":   symbols,
		}, 0, ""
	})
}

func (h *Handlers) RandomPercent(c *gin.Context) {
	percentStr := c.DefaultQuery("percent", "25")

	h.handleRNG(c, func() (string, gin.H, int, string) {
		if _, _, err := rng.ParsePercentExact(percentStr); err != nil {
			return "", nil, http.StatusBadRequest, err.Error()
		}

		r, err := rng.RollPercent(h.r, percentStr)
		if err != nil {
			h.log.Errorw("percent roll failed", "error", err)
			return "", nil, drawStatus(err), "Error fetching a random number."
		}

		result := "Fail"
		if r.Pass {
			result = "Pass"
		}

		text := fmt.Sprintf("Rolled %d from %d/%d\n%s", r.Roll, r.Num, r.Den, result)
		return text, gin.H{
			"percent": percentStr,
			"success": r.Num,
			"out_of":  r.Den,
			"roll":    r.Roll,
			"pass":    r.Pass,
		}, 0, ""
	})
}

func (h *Handlers) Health(c *gin.Context) {
	st := h.r.Stats()
	payload := gin.H{
		"mode":        st.Mode,
		"initialized": st.Initialized,
		"draws":       st.Draws,
		"poisoned":    st.Poisoned,
	}

	problem := ""
	switch {
	case !st.Initialized:
		problem = "generator not initialized"
	case st.Poisoned:
		problem = "lock poisoned"
	}

	checked := "never"
	if h.health != nil {
		ok, msg, t := h.health.Snapshot()
		checked = t.Format(time.RFC3339)
		payload["last_checked"] = checked
		if !ok && problem == "" {
			problem = msg
		}
	}

	if problem != "" {
		payload["ok"] = false
		payload["error"] = problem
		responder{c}.status(http.StatusServiceUnavailable,
			fmt.Sprintf("UNHEALTHY: %s (mode %s, last checked %s)", problem, st.Mode, checked), payload)
		return
	}

	payload["ok"] = true
	responder{c}.status(http.StatusOK,
		fmt.Sprintf("OK (mode %s, %d draws, last checked %s)", st.Mode, st.Draws, checked), payload)
}
