/*
Package runner implements one complete confgen run and the prompt
collaborators it can be driven with.

It acts as the bridge between the Engine and the outside world: it prints the
start and finish notices, asks the operator for values through a pluggable
Prompter, and hands the rendered text to an OutputSink. Nothing is written
unless every option resolved.

# Key Components

  - Runner: orchestrates notices, Engine.Generate and the output sink.
  - TextPrompter: line-based prompting on any reader/writer pair.
  - SurveyPrompter: rich terminal prompting backed by survey.
  - AnswersPrompter / DefaultsPrompter: non-interactive answering.

# Usage

	eng, err := confgen.New(ctx, ".confgen.yaml")
	if err != nil {
		log.Fatal(err)
	}

	r := runner.NewRunner(
		runner.WithPrompter(runner.NewTextPrompter(os.Stdin, runner.NewPlainConsole(os.Stdout))),
	)

	if _, err := r.Run(ctx, eng); err != nil {
		log.Fatal(err)
	}
*/
package runner
