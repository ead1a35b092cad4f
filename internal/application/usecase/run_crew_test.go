package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"debate-crew/internal/application/port/output"
	"debate-crew/internal/application/service"
	"debate-crew/internal/domain/entity"
)

type stubLLM struct {
	calls   int
	prompts []output.GenerateRequest
	respond func(req output.GenerateRequest) (string, error)
}

func (s *stubLLM) Generate(ctx context.Context, req output.GenerateRequest) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, req)
	return s.respond(req)
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                       {}
func (nopLogger) Info(msg string, args ...any)                        {}
func (nopLogger) Warn(msg string, args ...any)                        {}
func (nopLogger) Error(msg string, args ...any)                       {}
func (n nopLogger) WithField(key string, value any) output.LoggerPort { return n }
func (nopLogger) Close() error                                        { return nil }

type nopPresenter struct{}

func (nopPresenter) ShowRunStart(motion string, taskCount int)                           {}
func (nopPresenter) ShowTaskStart(index, total int, taskID, agentID, description string) {}
func (nopPresenter) ShowTaskResult(result entity.TaskResult)                             {}
func (nopPresenter) ShowTaskError(taskID string, err error)                              {}
func (nopPresenter) ShowRunComplete(results []entity.TaskResult)                         {}

type memStore struct {
	files map[string]string
	fail  bool
}

func newMemStore() *memStore {
	return &memStore{files: make(map[string]string)}
}

func (s *memStore) Write(path string, content string) (string, error) {
	if s.fail {
		return "", errors.New("disk full")
	}
	s.files[path] = content
	return path, nil
}

func framing(spec entity.AgentSpec) (string, error) {
	return "You are " + spec.Role, nil
}

func composer(description, expectedOutput string, execCtx *entity.ExecutionContext) (string, error) {
	var b strings.Builder
	b.WriteString(description)
	b.WriteString("\nExpected: ")
	b.WriteString(expectedOutput)
	if execCtx != nil {
		for _, r := range execCtx.Results() {
			b.WriteString("\n")
			b.WriteString(r.Output)
		}
	}
	return b.String(), nil
}

func debateSpecs() ([]entity.AgentSpec, []entity.TaskSpec) {
	agents := []entity.AgentSpec{
		{ID: "debater", Role: "A compelling debater", Goal: "Argue the given side", Backstory: "Experienced debater.", Model: "openai/gpt-4o-mini"},
		{ID: "judge", Role: "A fair judge", Goal: "Decide the winner", Backstory: "Impartial.", Model: "openai/gpt-4o-mini"},
	}
	tasks := []entity.TaskSpec{
		{ID: "propose", Description: "You are proposing the motion: {motion}.", ExpectedOutput: "Argument in favor.", AgentID: "debater", OutputFile: "output/propose.md"},
		{ID: "oppose", Description: "You are in opposition to the motion: {motion}.", ExpectedOutput: "Argument against.", AgentID: "debater", OutputFile: "output/oppose.md"},
		{ID: "judge_decide", Description: "Review the arguments presented by the debaters and decide which side is more convincing.", ExpectedOutput: "Your decision, and why.", AgentID: "judge", OutputFile: "output/decide.md"},
	}
	return agents, tasks
}

func newCrew(t *testing.T, llm *stubLLM, store *memStore, agents []entity.AgentSpec, tasks []entity.TaskSpec) *RunCrewUseCase {
	t.Helper()
	return newCrewWithComposer(t, composer, llm, store, agents, tasks)
}

func newCrewWithComposer(t *testing.T, compose PromptComposer, llm *stubLLM, store *memStore, agents []entity.AgentSpec, tasks []entity.TaskSpec) *RunCrewUseCase {
	t.Helper()

	registry := service.NewAgentRegistry()
	for _, spec := range agents {
		registry.Register(service.NewAgent(spec, llm, framing, nopLogger{}))
	}

	runner := NewTaskRunner(compose, store, nopLogger{})
	return NewRunCrewUseCase(tasks, registry, runner, nopLogger{}, nopPresenter{})
}

func TestRun_SequentialOrderAndContextThreading(t *testing.T) {
	agents, tasks := debateSpecs()

	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		switch {
		case strings.Contains(req.Prompt, "proposing the motion"):
			return "PRO-ARGUMENT", nil
		case strings.Contains(req.Prompt, "opposition to the motion"):
			return "CON-ARGUMENT", nil
		default:
			return "VERDICT: proposition wins", nil
		}
	}}
	store := newMemStore()
	crew := newCrew(t, llm, store, agents, tasks)

	inputs := entity.RuntimeInputs{"motion": "AI will destroy more jobs than it creates"}
	results, err := crew.Run(context.Background(), inputs)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, want := range []string{"propose", "oppose", "judge_decide"} {
		if results[i].TaskID != want {
			t.Errorf("result %d: expected task %q, got %q", i, want, results[i].TaskID)
		}
	}

	// Judge is the third generation call; its prompt must carry both prior
	// outputs verbatim.
	judgePrompt := llm.prompts[2].Prompt
	if !strings.Contains(judgePrompt, "PRO-ARGUMENT") {
		t.Error("judge prompt should contain the propose output verbatim")
	}
	if !strings.Contains(judgePrompt, "CON-ARGUMENT") {
		t.Error("judge prompt should contain the oppose output verbatim")
	}

	if store.files["output/decide.md"] != "VERDICT: proposition wins" {
		t.Errorf("decide artifact should hold the raw judge output, got %q", store.files["output/decide.md"])
	}
}

func TestRun_ResolvesDescriptionBeforeExecution(t *testing.T) {
	agents, tasks := debateSpecs()

	var proposeReq output.GenerateRequest
	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		if strings.Contains(req.Prompt, "proposing the motion") {
			proposeReq = req
		}
		return "ok", nil
	}}
	crew := newCrew(t, llm, newMemStore(), agents, tasks)

	_, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "AI will destroy more jobs than it creates"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if !strings.Contains(proposeReq.Prompt, "You are proposing the motion: AI will destroy more jobs than it creates.") {
		t.Errorf("propose prompt should carry the resolved description, got:\n%s", proposeReq.Prompt)
	}
}

func TestRun_GenerationFailureKeepsPartialResults(t *testing.T) {
	agents, tasks := debateSpecs()

	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		if strings.Contains(req.Prompt, "opposition to the motion") {
			return "", errors.New("model unavailable")
		}
		return "PRO-ARGUMENT", nil
	}}
	crew := newCrew(t, llm, newMemStore(), agents, tasks)

	results, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "X"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(results) != 1 || results[0].TaskID != "propose" {
		t.Fatalf("expected exactly the propose result, got %v", results)
	}

	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if genErr.TaskID != "oppose" {
		t.Errorf("error should reference the failed task, got %q", genErr.TaskID)
	}
	if llm.calls != 2 {
		t.Errorf("no further generation calls after a failure, got %d", llm.calls)
	}
}

func TestRun_MissingBindingFailsBeforeAnyGeneration(t *testing.T) {
	agents, tasks := debateSpecs()
	tasks[2].Description = "Judge the debate on {motion} held in {venue}."

	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		return "ok", nil
	}}
	crew := newCrew(t, llm, newMemStore(), agents, tasks)

	results, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "X"})
	if err == nil {
		t.Fatal("expected error")
	}

	var bindErr *service.BindError
	if !errors.As(err, &bindErr) {
		t.Fatalf("expected BindError, got %v", err)
	}
	if len(bindErr.Missing) != 1 || bindErr.Missing[0] != "venue" {
		t.Errorf("expected missing [venue], got %v", bindErr.Missing)
	}
	if !strings.Contains(err.Error(), "judge_decide") {
		t.Errorf("error should name the offending task: %v", err)
	}

	if llm.calls != 0 {
		t.Errorf("binding must fail before any generation call, got %d calls", llm.calls)
	}
	if results != nil {
		t.Errorf("no results expected, got %v", results)
	}
}

func TestRun_UnknownAgentAborts(t *testing.T) {
	agents, tasks := debateSpecs()
	tasks[1].AgentID = "moderator"

	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		return "PRO-ARGUMENT", nil
	}}
	crew := newCrew(t, llm, newMemStore(), agents, tasks)

	results, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "X"})
	if err == nil {
		t.Fatal("expected error")
	}

	var unknownErr *UnknownAgentError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownAgentError, got %v", err)
	}
	if unknownErr.TaskID != "oppose" || unknownErr.AgentID != "moderator" {
		t.Errorf("unexpected error detail: %+v", unknownErr)
	}
	if len(results) != 1 {
		t.Errorf("partial results should carry the completed propose task, got %d", len(results))
	}
}

func TestRun_ArtifactFailureKeepsResultAndAborts(t *testing.T) {
	agents, tasks := debateSpecs()

	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		return "PRO-ARGUMENT", nil
	}}
	store := newMemStore()
	store.fail = true
	crew := newCrew(t, llm, store, agents, tasks)

	results, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "X"})
	if err == nil {
		t.Fatal("expected error")
	}

	var artErr *ArtifactWriteError
	if !errors.As(err, &artErr) {
		t.Fatalf("expected ArtifactWriteError, got %v", err)
	}
	if artErr.TaskID != "propose" || artErr.Path != "output/propose.md" {
		t.Errorf("unexpected error detail: %+v", artErr)
	}

	// Generated content is valid even when persistence failed.
	if len(results) != 1 || results[0].Output != "PRO-ARGUMENT" {
		t.Errorf("result should be kept despite the write failure, got %v", results)
	}
	if llm.calls != 1 {
		t.Errorf("run should abort after the artifact failure, got %d calls", llm.calls)
	}
}

func TestRun_PromptsComeFromInjectedComposer(t *testing.T) {
	agents, tasks := debateSpecs()

	marker := func(description, expectedOutput string, execCtx *entity.ExecutionContext) (string, error) {
		return "COMPOSED::" + description, nil
	}
	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		return "ok", nil
	}}
	crew := newCrewWithComposer(t, marker, llm, newMemStore(), agents, tasks)

	_, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "X"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for i, req := range llm.prompts {
		if !strings.HasPrefix(req.Prompt, "COMPOSED::") {
			t.Errorf("prompt %d should come from the injected composer, got %q", i, req.Prompt)
		}
	}
}

func TestRun_ComposerFailureAbortsBeforeGeneration(t *testing.T) {
	agents, tasks := debateSpecs()

	failing := func(description, expectedOutput string, execCtx *entity.ExecutionContext) (string, error) {
		return "", errors.New("bad layout")
	}
	llm := &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		return "ok", nil
	}}
	crew := newCrewWithComposer(t, failing, llm, newMemStore(), agents, tasks)

	results, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "X"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "compose prompt") {
		t.Errorf("error should surface the composer failure: %v", err)
	}
	if llm.calls != 0 {
		t.Errorf("no generation call should happen when composing fails, got %d", llm.calls)
	}
	if len(results) != 0 {
		t.Errorf("no results expected, got %v", results)
	}
}

func TestRun_NoOutputFileSkipsArtifact(t *testing.T) {
	agents, tasks := debateSpecs()
	for i := range tasks {
		tasks[i].OutputFile = ""
	}

	var llm *stubLLM
	llm = &stubLLM{respond: func(req output.GenerateRequest) (string, error) {
		return fmt.Sprintf("answer %d", llm.calls), nil
	}}
	store := newMemStore()
	store.fail = true // would error if any write happened
	crew := newCrew(t, llm, store, agents, tasks)

	results, err := crew.Run(context.Background(), entity.RuntimeInputs{"motion": "X"})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for _, r := range results {
		if r.ArtifactPath != "" {
			t.Errorf("task %q should have no artifact path", r.TaskID)
		}
	}
}
