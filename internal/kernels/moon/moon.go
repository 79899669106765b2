// Package moon implements the moon example kernel: a minimal Lua kernel in
// the spirit of the imoon reference kernel. Cells are Lua chunks evaluated
// in one persistent interpreter state per session; values returned by a
// chunk become the cell's result text, print output is emitted as stdout
// stream messages, and the %version magic produces a display_data message.
package moon

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Shopify/go-lua"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/jupyterkit/kernel-contract-tests/kernel"
)

const versionMagic = "%version"

const languageVersion = "5.2"

type Backend struct {
	state *lua.State
	pub   kernel.Publisher
}

func New() *Backend {
	b := &Backend{state: lua.NewState()}
	lua.OpenLibraries(b.state)
	// print goes to the session's iopub stream instead of the process stdout
	b.state.Register("print", func(l *lua.State) int {
		n := l.Top()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, renderValue(l, i))
		}
		b.emitStream(strings.Join(parts, "\t") + "\n")
		return 0
	})
	return b
}

func (b *Backend) Info() kernel.KernelInfo {
	return kernel.KernelInfo{
		ProtocolVersion:       kernel.ProtocolVersion,
		Implementation:        "imoon",
		ImplementationVersion: "1.0",
		LanguageName:          "Lua",
		LanguageVersion:       languageVersion,
		MIMEType:              "text/x-lua",
		FileExtension:         ".lua",
		Banner:                "Moon kernel - Lua " + languageVersion + " (go-lua)",
	}
}

func (b *Backend) Execute(code string, pub kernel.Publisher) (string, bool, error) {
	b.pub = pub
	defer func() { b.pub = nil }()

	if strings.TrimSpace(code) == versionMagic {
		b.publishVersion()
		return "", false, nil
	}

	base := b.state.Top()
	if err := lua.LoadString(b.state, code); err != nil {
		b.state.SetTop(base)
		return "", false, fmt.Errorf("lua syntax error: %s", err)
	}
	if err := b.state.ProtectedCall(0, lua.MultipleReturns, 0); err != nil {
		b.state.SetTop(base)
		return "", false, fmt.Errorf("lua runtime error: %s", err)
	}

	nresults := b.state.Top() - base
	if nresults == 0 {
		return "", false, nil
	}
	parts := make([]string, 0, nresults)
	for i := base + 1; i <= base+nresults; i++ {
		parts = append(parts, renderValue(b.state, i))
	}
	b.state.SetTop(base)
	return strings.Join(parts, "\t"), true, nil
}

func (b *Backend) publishVersion() {
	content := ldvalue.ObjectBuild().
		Set("data", ldvalue.ObjectBuild().
			Set("text/plain", ldvalue.String("Lua "+languageVersion+" (go-lua)")).
			Build()).
		Build()
	metadata := ldvalue.ObjectBuild().
		Set("text/plain", ldvalue.ObjectBuild().Build()).
		Build()
	b.pub.Publish(kernel.DisplayDataMsg, content, metadata)
}

func (b *Backend) emitStream(text string) {
	if b.pub == nil {
		return
	}
	b.pub.Publish(kernel.StreamMsg, ldvalue.ObjectBuild().
		Set("name", ldvalue.String("stdout")).
		Set("text", ldvalue.String(text)).
		Build(), ldvalue.ObjectBuild().Build())
}

// renderValue formats one stack value the way the Lua REPL would show it.
func renderValue(l *lua.State, index int) string {
	switch l.TypeOf(index) {
	case lua.TypeNil:
		return "nil"
	case lua.TypeBoolean:
		if l.ToBoolean(index) {
			return "true"
		}
		return "false"
	case lua.TypeNumber:
		n, _ := l.ToNumber(index)
		if n == math.Trunc(n) && math.Abs(n) < 1e15 {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'g', 14, 64)
	case lua.TypeString:
		s, _ := l.ToString(index)
		return s
	case lua.TypeTable:
		return "table"
	case lua.TypeFunction:
		return "function"
	case lua.TypeUserData:
		return "userdata"
	case lua.TypeThread:
		return "thread"
	default:
		return "unknown"
	}
}
