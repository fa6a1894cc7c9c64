package modelbased

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// reply is the schema the model is asked to answer with.
type reply struct {
	TaskName string `json:"taskName"`
	Assignee string `json:"assignee"`
	DueDate  string `json:"dueDate"`
	Priority string `json:"priority"`
}

var (
	errNotObject  = errors.New("not a JSON object")
	errNoBraces   = errors.New("no brace-delimited object")
	errNoTaskName = errors.New("taskName field not found")
)

// salvageStage is one recovery attempt over the raw reply.
type salvageStage struct {
	name  string
	parse func(raw string) (reply, error)
}

// salvageStages run in order from strict to lenient.
var salvageStages = []salvageStage{
	{name: "direct", parse: parseDirect},
	{name: "unfenced", parse: parseUnfenced},
	{name: "braced", parse: parseBraced},
	{name: "fields", parse: parseFields},
}

var (
	fenceOpenPattern  = regexp.MustCompile("^```[a-zA-Z]*[ \\t]*\\n?")
	fenceClosePattern = regexp.MustCompile("\\n?```$")
	bracedPattern     = regexp.MustCompile(`(?s)\{.*\}`)

	fieldPatterns = map[string]*regexp.Regexp{
		"taskName": fieldPattern("taskName"),
		"assignee": fieldPattern("assignee"),
		"dueDate":  fieldPattern("dueDate"),
		"priority": fieldPattern("priority"),
	}
)

func fieldPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`"` + name + `"\s*:\s*"([^"]+)"`)
}

// salvage returns the first successful stage's result and its name. The
// error joins every stage failure.
func salvage(raw string) (reply, string, error) {
	var errs []error
	for _, st := range salvageStages {
		r, err := st.parse(raw)
		if err == nil {
			return r, st.name, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", st.name, err))
	}
	return reply{}, "", errors.Join(errs...)
}

func parseDirect(raw string) (reply, error) {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "{") {
		return reply{}, errNotObject
	}

	var r reply
	if err := json.Unmarshal([]byte(text), &r); err != nil {
		return reply{}, err
	}
	return r, nil
}

func parseUnfenced(raw string) (reply, error) {
	return parseDirect(unfence(raw))
}

func parseBraced(raw string) (reply, error) {
	m := bracedPattern.FindString(unfence(raw))
	if m == "" {
		return reply{}, errNoBraces
	}
	return parseDirect(m)
}

func parseFields(raw string) (reply, error) {
	var r reply
	m := fieldPatterns["taskName"].FindStringSubmatch(raw)
	if m == nil {
		return reply{}, errNoTaskName
	}
	r.TaskName = m[1]

	if m := fieldPatterns["assignee"].FindStringSubmatch(raw); m != nil {
		r.Assignee = m[1]
	}
	if m := fieldPatterns["dueDate"].FindStringSubmatch(raw); m != nil {
		r.DueDate = m[1]
	}
	if m := fieldPatterns["priority"].FindStringSubmatch(raw); m != nil {
		r.Priority = m[1]
	}
	return r, nil
}

// unfence removes surrounding code-fence markers and stray backticks.
func unfence(raw string) string {
	text := strings.TrimSpace(raw)
	text = fenceOpenPattern.ReplaceAllString(text, "")
	text = fenceClosePattern.ReplaceAllString(text, "")
	return strings.TrimSpace(strings.Trim(text, "`"))
}
