package thinking_test

import (
	"strings"
	"sync"
	"testing"
	"testing/quick"

	// Packages
	"github.com/mutablelogic/go-voice/pkg/thinking"
	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_Strip_001(t *testing.T) {
	tests := []struct {
		name, in, out string
	}{
		{"empty", "", ""},
		{"plain", "Hello, world", "Hello, world"},
		{"complete", "<think>reasoning</think>Hello", "Hello"},
		{"two spans", "<thinking>a</thinking><thinking>b</thinking>Result", "Result"},
		{"mixed keywords", "<thought>a</thought> Hello <think>b</think> there", "Hello  there"},
		{"thought chain", "<thought_chain>\nstep 1\nstep 2\n</thought_chain>\nAnswer", "Answer"},
		{"multiline", "<think>\nline 1\nline 2\n</think>\n\nHello\n", "Hello"},
		{"unterminated", "<think>still going", "<think>still going"},
		{"other closer", "<think>reasoning</response>Hello", "Hello"},
		{"answer closer", "<thinking>reasoning</answer>  Hello  ", "Hello"},
		{"nothing after closer", "<think>reasoning</answer>", ""},
		{"closer only", "reasoning</think>Hello", "reasoning</think>Hello"},
		{"attributes", "<thinking mode=\"deep\">x</thinking>y", "y"},
		{"attributes on closer", "<thinking confidence=\"0.9\">x</thinking >y", "y"},
		{"substring", "I think you are right", "I think you are right"},
		{"longer tag name", "<thinker>x</thinker>y", "<thinker>x</thinker>y"},
		{"unrelated tags", "<b>bold</b> text", "<b>bold</b> text"},
		{"uppercase", "<THINK>x</THINK>y", "<THINK>x</THINK>y"},
		{"nested", "<think>a<think>b</think>c</think>d", "c</think>d"},
		{"nearest closer", "<think>a</think>keep<think>b</think>end", "keepend"},
		{"interleaved", "<think>a</answer>b</think>c", "c"},
		{"unpaired first opener", "<thought>x<think>y</think>", "<thought>x"},
		{"closer in attributes", "<think </answer>rest", "<think </answer>rest"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(test.out, thinking.Strip(test.in))
		})
	}
}

func Test_Strip_002(t *testing.T) {
	// Text without delimiters is never modified
	f := func(s string) bool {
		s = strings.NewReplacer("<", "", ">", "").Replace(s)
		return thinking.Strip(s) == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func Test_Strip_003(t *testing.T) {
	assert := assert.New(t)
	tests := []string{
		"",
		"Hello",
		"<think>reasoning</think>Hello",
		"<thinking>a</thinking><thinking>b</thinking>Result",
		"<think>still going",
		"<think>reasoning</response>Hello",
		"<thinking mode=\"deep\">x</thinking>y",
		"<think>a<think>b</think>c</think>d",
		"<thought>x<think>y</think>",
		"before</answer>after",
	}
	for _, test := range tests {
		once := thinking.Strip(test)
		assert.Equal(once, thinking.Strip(once), "not idempotent for %q", test)
	}
}

func Test_Strip_004(t *testing.T) {
	// Concurrent use shares no state
	assert := assert.New(t)
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal("Hello", thinking.Strip("<think>reasoning</think>Hello"))
		}()
	}
	wg.Wait()
}

func Test_Strip_005(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"thought", "thinking", "think", "thought_chain"}, thinking.Openers)
	assert.Equal([]string{"thought", "thinking", "think", "thought_chain", "response", "answer"}, thinking.Closers)
}

func Test_Strip_006(t *testing.T) {
	// Complete spans are removed before a leftover closer is considered, so an
	// unpaired opener can be paired with a closer on the next pass
	assert := assert.New(t)
	once := thinking.Strip("<thought>x<think>y</think></answer>z")
	assert.Equal("<thought>x</answer>z", once)
	assert.Equal("z", thinking.Strip(once))
}
