package voice

import (
	"regexp"
	"slices"
	"strings"

	"github.com/panasi/panasi/dialog"
)

// Bulk commands are matched on the folded form, so only canonical words
// appear here.
var (
	stopAllPhrases = []string{
		"タイマーすべて停止",
		"すべてタイマー停止",
		"タイマー停止すべて",
		"すべて停止",
	}

	stopAllPattern = regexp.MustCompile(
		`(すべて|ぜんぶ|みんな|オール).*(停止|ストップ|とめ)|(停止|ストップ|とめ).*(すべて|ぜんぶ|みんな|オール)|タイマー.*(停止|ストップ|とめ)`,
	)

	clearAllPhrases = []string{
		"タイマーすべて終了",
		"すべてタイマー終了",
		"タイマー終了すべて",
		"すべて終了",
		"タイマー終了",
		"終了タイマー",
	}

	clearAllPattern = regexp.MustCompile(
		`(すべて|ぜんぶ|みんな|オール).*(終了|削除|クリア)|(終了|削除|クリア).*(すべて|ぜんぶ|みんな|オール)|タイマー.*(終了|削除|クリア)`,
	)
)

var setupPhrases = []string{
	"タイマー設定",
	"タイマーセット",
	"タイマー作成",
	"新しいタイマー",
	"タイマー追加",
	"タイマーをセット",
	"タイマーを設定",
}

// A bare name, even one ending in パン, is not a move request; it is left to
// the partial stage.
var movePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(.+?)\s*(?:を|の)?\s*(?:一番上に|上に|トップに|先頭に|前に|最初に)\s*(?:持ってきて|移動|表示|出して)?`),
	regexp.MustCompile(`(.+?)\s*(?:を|が)?\s*(?:見たい|確認したい|チェックしたい)`),
	regexp.MustCompile(`(.+?)\s*(?:を|の)?\s*(?:優先|重要|急ぎ)`),
	regexp.MustCompile(`^(.+?)(?:を|の)?(?:上|トップ|先頭|最初)$`),
	regexp.MustCompile(`^(.+?)(?:を|の)?(?:移動|表示)$`),
}

const queryWords = `(?:残り時間|あと何分|あとどれくらい|時間|進捗|状況)`

var (
	bareQuery  = regexp.MustCompile(`^` + queryWords + `(?:は)?(?:どう|どれくらい|いくつ|何分)?(?:\?|？)?`)
	namedQuery = regexp.MustCompile(`^(.+?)(?:の|は)?` + queryWords)
	queryWord  = regexp.MustCompile(queryWords)
)

// Names that ask about every timer rather than one of them.
var allTimerWords = []string{
	"すべて", "全部", "ぜんぶ", "みんな", "全体", "タイマー", "全タイマー",
}

var operationKeywords = []string{
	"止め", "停止", "ストップ", "一時停止", "再開", "続行", "完了", "終了", "削除",
}

var (
	pausePattern  = regexp.MustCompile(`(.+?)(?:止め|停止|ストップ|一時停止)`)
	resumePattern = regexp.MustCompile(`(.+?)(?:再開|続行)`)
	deletePattern = regexp.MustCompile(`(.+?)(?:完了|終了|削除|おわり)`)
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// trimParticle drops one trailing particle from a captured name.
func trimParticle(s string) string {
	for _, p := range []string{"を", "の", "は", "が"} {
		if t := strings.TrimSuffix(s, p); t != s && t != "" {
			return t
		}
	}

	return s
}

func containsAny(s string, subs []string) bool {
	return slices.ContainsFunc(subs, func(sub string) bool {
		return strings.Contains(s, sub)
	})
}

// bulk handles "stop all" and "clear all". It runs before dialog
// continuation so it can interrupt a conversation.
func (r *Router) bulk(req *request) (Outcome, bool) {
	folded := req.u.Folded

	if containsAny(folded, stopAllPhrases) || stopAllPattern.MatchString(folded) {
		_, err := req.timers.PauseAll()
		if err != nil {
			return failure("%s", err.Error()), true
		}

		return success(msgPausedAll), true
	}

	if containsAny(folded, clearAllPhrases) || clearAllPattern.MatchString(folded) {
		if req.timers.DeleteAll() == 0 {
			return failure(msgNothingToDrop), true
		}

		return success(msgDeletedAll), true
	}

	return Outcome{}, false
}

// continueDialog feeds the utterance to an active conversation. It always
// consumes the utterance while a conversation is active.
func (r *Router) continueDialog(req *request) (Outcome, bool) {
	if !req.conv.Active() {
		return Outcome{}, false
	}

	step := dialog.Advance(*req.conv, req.u.Raw, req.u.Compact)
	*req.conv = step.Next

	switch step.Action {
	case dialog.CreateTimer:
		_, err := req.timers.Create(
			step.Data.BreadName,
			step.Data.ProcessName,
			step.Data.Minutes,
		)
		if err != nil {
			return failure("%s", err.Error()), true
		}

		msg := dialog.Created(step.Data)

		return Outcome{DisplayText: msg, SpokenText: msg}, true
	default:
		return Outcome{
			DisplayText: step.Display,
			SpokenText:  step.Prompt,
		}, true
	}
}

// setup starts a new conversation, replacing any current one.
func (r *Router) setup(req *request) (Outcome, bool) {
	if !containsAny(req.u.Compact, setupPhrases) {
		return Outcome{}, false
	}

	step := dialog.Start()
	*req.conv = step.Next

	return Outcome{
		DisplayText: step.Display,
		SpokenText:  step.Prompt,
	}, true
}

// moveCandidate returns the name fragment of a move-to-top request.
func moveCandidate(u Utterance) (string, bool) {
	for _, re := range movePatterns {
		for _, text := range []string{u.Raw, u.Compact} {
			m := re.FindStringSubmatch(text)
			if m == nil {
				continue
			}

			name := strings.TrimSpace(m[1])
			if name == "" {
				continue
			}

			return name, true
		}
	}

	return "", false
}

// move brings the named timer to the top of the display order.
func (r *Router) move(req *request) (Outcome, bool) {
	name, ok := moveCandidate(req.u)
	if !ok || queryWord.MatchString(name) {
		return Outcome{}, false
	}

	v, found := req.timers.Find(name)
	if !found {
		return failure(msgNotFound, name), true
	}

	if err := req.timers.MoveToTop(v.ID); err != nil {
		return failure(msgNotFound, name), true
	}

	return success(msgMoved, v.BreadName), true
}

// query reports remaining time for every timer or for a named one.
func (r *Router) query(req *request) (Outcome, bool) {
	text := req.u.Compact

	if createPattern.MatchString(text) {
		return Outcome{}, false
	}

	if bareQuery.MatchString(text) {
		msg := statusReport(req.timers.All())

		return Outcome{DisplayText: msg, SpokenText: msg}, true
	}

	m := namedQuery.FindStringSubmatch(text)
	if m == nil {
		return Outcome{}, false
	}

	name := trimParticle(m[1])

	if slices.Contains(allTimerWords, name) {
		msg := statusReport(req.timers.All())

		return Outcome{DisplayText: msg, SpokenText: msg}, true
	}

	v, found := req.timers.Find(name)
	if !found {
		return failure(msgNotFound, name), true
	}

	msg := timerReport(v)

	return Outcome{DisplayText: msg, SpokenText: msg}, true
}

// isOperation reports whether free text refers to an existing timer or
// contains an operation verb, in which case it is not a new timer.
func isOperation(free string, timers Timers) bool {
	if containsAny(free, operationKeywords) {
		return true
	}

	for _, v := range timers.All() {
		if v.BreadName != "" && strings.Contains(free, v.BreadName) {
			return true
		}
	}

	return false
}

// create handles the single-shot creation grammar.
func (r *Router) create(req *request) (Outcome, bool) {
	free, minutes, ok := r.parser.Match(req.u)
	if !ok {
		return Outcome{}, false
	}

	if isOperation(free, req.timers) {
		return r.operation(req)
	}

	bread, process := r.parser.Split(free)

	v, err := req.timers.Create(bread, process, minutes)
	if err != nil {
		return failure("%s", err.Error()), true
	}

	return success(msgStarted, v.BreadName, v.ProcessName, v.Duration), true
}

// operation pauses, resumes or deletes a named timer.
func (r *Router) operation(req *request) (Outcome, bool) {
	text := req.u.Compact

	ops := []struct {
		re  *regexp.Regexp
		do  func(int) error
		msg string
	}{
		{re: pausePattern, do: req.timers.Pause, msg: msgPaused},
		{re: resumePattern, do: req.timers.Resume, msg: msgResumed},
		{re: deletePattern, do: req.timers.Delete, msg: msgCompleted},
	}

	for _, op := range ops {
		m := op.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}

		name := trimParticle(m[1])

		v, found := req.timers.Find(name)
		if !found {
			return failure(msgNotFound, name), true
		}

		if err := op.do(v.ID); err != nil {
			return failure(msgNotFound, name), true
		}

		return success(op.msg, name), true
	}

	return Outcome{}, false
}

// partial acknowledges a fragment of a creation command.
func (r *Router) partial(req *request) (Outcome, bool) {
	text := req.u.Compact

	switch {
	case digitsOnly.MatchString(text):
		return success(msgPartialNumber, text), true
	case slices.Contains(r.breads, text):
		return success(msgPartialBread, text), true
	case slices.Contains(r.processes, text):
		return success(msgPartialProcess, text), true
	}

	return Outcome{}, false
}
