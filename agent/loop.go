// Copyright 2025 The Voyago Authors
// SPDX-License-Identifier: Apache-2.0

package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"

	"github.com/voyago/voyago/types"
)

// loopPromptHeader is the reasoning loop instruction format. The model picks
// one tool per step; the loop executes it and feeds the observation back.
var loopPromptHeader = heredoc.Doc(`
	You are an expert travel researcher. Answer the research brief below by
	gathering information with the available tools.

	You have access to the following tools:
	%s

	Use the following format:
	Thought: think about what information is still missing
	Action: the tool to use, exactly one of [%s]
	Action Input: the input to the tool
	Observation: the result of the tool (filled in for you)
	... (Thought/Action/Action Input/Observation repeats)
	Thought: I have gathered enough information
	Final Answer: a comprehensive research summary covering attractions, ratings, prices, weather, customs and recommendations

	Begin!

	Research Brief:
	%s

`)

// runLoop executes the iterative think/act/observe loop. The returned error
// signals that loop mode is unusable (first model call failed); iteration or
// budget exhaustion is not an error and yields the partial research gathered
// so far.
func (r *Researcher) runLoop(ctx context.Context, req *types.TripRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.executionBudget)
	defer cancel()

	base := fmt.Sprintf(loopPromptHeader, r.toolCatalog(), r.toolNames(), BuildInput(req))

	var scratchpad strings.Builder
	var observations []string

	for i := 0; i < r.maxIterations; i++ {
		completion, err := r.model.Complete(ctx, base+scratchpad.String())
		if err != nil {
			if len(observations) > 0 {
				// Budget exhausted or a late failure: partial research is
				// still worth passing forward.
				r.logger.WarnContext(ctx, "reasoning loop ended early", "iteration", i, "error", err)
				return strings.Join(observations, "\n"), nil
			}
			return "", fmt.Errorf("reasoning loop step %d: %w", i, err)
		}

		step := parseStep(completion)
		if step.final != "" {
			return step.final, nil
		}
		if step.action == "" {
			scratchpad.WriteString(completion)
			scratchpad.WriteString("\nObservation: no Action found; respond with an Action line or a Final Answer.\n")
			continue
		}

		observation := r.callByName(ctx, step.action, step.input)
		observations = append(observations, fmt.Sprintf("%s(%s): %s", step.action, step.input, observation))

		scratchpad.WriteString(step.text)
		scratchpad.WriteString("\nObservation: ")
		scratchpad.WriteString(observation)
		scratchpad.WriteString("\n")
	}

	r.logger.InfoContext(ctx, "reasoning loop hit the iteration cap", "iterations", r.maxIterations)
	return strings.Join(observations, "\n"), nil
}

// loopStep is one parsed model turn.
type loopStep struct {
	// text is the model output up to and including the Action Input line.
	text string
	// action and input are the requested tool call.
	action string
	input  string
	// final is set when the model concluded.
	final string
}

// parseStep extracts the first action (or the final answer) from a loop
// completion.
func parseStep(completion string) loopStep {
	if _, answer, found := strings.Cut(completion, "Final Answer:"); found {
		return loopStep{final: strings.TrimSpace(answer)}
	}

	var step loopStep
	var kept []string
	for _, line := range strings.Split(completion, "\n") {
		kept = append(kept, line)
		trimmed := strings.TrimSpace(line)
		if after, found := strings.CutPrefix(trimmed, "Action:"); found {
			step.action = strings.TrimSpace(after)
		}
		if after, found := strings.CutPrefix(trimmed, "Action Input:"); found {
			step.input = strings.TrimSpace(after)
			break
		}
	}
	step.text = strings.Join(kept, "\n")
	return step
}

// callByName dispatches one loop-requested tool call. Unknown tools and tool
// failures both come back as observations, never as errors.
func (r *Researcher) callByName(ctx context.Context, name, input string) string {
	t, ok := r.tools.ByName(name)
	if !ok {
		return fmt.Sprintf("unknown tool %q; available tools: %s", name, r.toolNames())
	}

	result := t.Call(ctx, types.Query{Text: input, Location: input})
	return truncate(result.ContextText(), searchSnippetCap)
}

// toolCatalog lists each tool with its description for the loop prompt.
func (r *Researcher) toolCatalog() string {
	var sb strings.Builder
	for _, t := range r.tools.All() {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Name(), t.Description())
	}
	return strings.TrimRight(sb.String(), "\n")
}

// toolNames joins the available tool names.
func (r *Researcher) toolNames() string {
	var names []string
	for _, t := range r.tools.All() {
		names = append(names, t.Name())
	}
	return strings.Join(names, ", ")
}
