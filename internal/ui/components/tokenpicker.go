package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/ui/theme"
)

// TokenPicker builds a sentence from a pool of word tokens. Enter on the
// cursor moves a token into the sentence, backspace takes the last one
// back.
type TokenPicker struct {
	Pool   []string
	Cursor int

	used   []bool
	picked []int // indexes into Pool, in sentence order
}

// NewTokenPicker creates a picker over pool. The caller shuffles.
func NewTokenPicker(pool []string) TokenPicker {
	return TokenPicker{Pool: pool, used: make([]bool, len(pool))}
}

// Update handles navigation, picking and unpicking.
func (t TokenPicker) Update(msg tea.Msg) (TokenPicker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}
	switch kmsg.String() {
	case "left", "h":
		t.Cursor = t.step(-1)
	case "right", "l", "tab":
		t.Cursor = t.step(1)
	case "space":
		t.Pick()
	case "backspace":
		t.Unpick()
	}
	return t, nil
}

// step finds the next unused token in direction dir, staying put when
// there is none.
func (t TokenPicker) step(dir int) int {
	for i := t.Cursor + dir; i >= 0 && i < len(t.Pool); i += dir {
		if !t.used[i] {
			return i
		}
	}
	return t.Cursor
}

// Pick appends the token under the cursor to the sentence.
func (t *TokenPicker) Pick() {
	if t.Cursor < 0 || t.Cursor >= len(t.Pool) || t.used[t.Cursor] {
		return
	}
	t.used[t.Cursor] = true
	t.picked = append(t.picked, t.Cursor)
	if next := t.step(1); next != t.Cursor {
		t.Cursor = next
	} else {
		t.Cursor = t.step(-1)
	}
}

// Unpick returns the last token of the sentence to the pool.
func (t *TokenPicker) Unpick() {
	if len(t.picked) == 0 {
		return
	}
	last := t.picked[len(t.picked)-1]
	t.picked = t.picked[:len(t.picked)-1]
	t.used[last] = false
	t.Cursor = last
}

// Reset returns every token to the pool.
func (t *TokenPicker) Reset() {
	t.picked = nil
	t.used = make([]bool, len(t.Pool))
	t.Cursor = 0
}

// Complete reports whether every token has been placed.
func (t TokenPicker) Complete() bool {
	return len(t.picked) == len(t.Pool)
}

// Sentence returns the picked tokens in order.
func (t TokenPicker) Sentence() []string {
	out := make([]string, len(t.picked))
	for i, idx := range t.picked {
		out[i] = t.Pool[idx]
	}
	return out
}

// Value returns the sentence as a space-separated answer.
func (t TokenPicker) Value() string {
	return strings.Join(t.Sentence(), " ")
}

// View renders the sentence so far above the remaining pool.
func (t TokenPicker) View() string {
	sentence := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(t.Value())
	if len(t.picked) == 0 {
		sentence = theme.Hint.Render("pick the words in order")
	}

	chips := make([]string, len(t.Pool))
	for i, tok := range t.Pool {
		switch {
		case t.used[i]:
			chips[i] = theme.TokenUsed.Render(tok)
		case i == t.Cursor:
			chips[i] = theme.TokenActive.Render(tok)
		default:
			chips[i] = theme.Token.Render(tok)
		}
	}
	return sentence + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}
