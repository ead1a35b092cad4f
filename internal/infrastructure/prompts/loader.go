package prompts

import (
	_ "embed"
)

//go:embed system.txt
var SystemPromptTemplate string

//go:embed task.txt
var TaskPromptTemplate string
