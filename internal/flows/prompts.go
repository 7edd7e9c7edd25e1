package flows

import (
	"fmt"

	"github.com/ziadkadry99/mermaidviz/internal/llm"
)

const systemPrompt = `You are an expert in Mermaid diagram syntax. Reply with Mermaid code only. Do not add explanations.`

const generatePromptTemplate = `Generate Mermaid code based on the user's description. Ensure the generated code is valid Mermaid code.

Description: %s`

// flowchartPalette is the theme block suggested for flowchart-like diagrams.
const flowchartPalette = `%%{init: {
  "theme": "base",
  "themeVariables": {
    "primaryColor": "#E6F7FF",
    "primaryBorderColor": "#0A84C1",
    "primaryTextColor": "#003A57",
    "secondaryColor": "#EAF7EA",
    "secondaryBorderColor": "#4CAF50",
    "secondaryTextColor": "#1B5E20",
    "tertiaryColor": "#FFF8D6",
    "tertiaryBorderColor": "#D69E00",
    "tertiaryTextColor": "#705400",
    "lineColor": "#0A84C1",
    "fontFamily": "Inter, sans-serif"
  }
}}%%`

// sequencePalette is the theme block suggested for sequence diagrams.
const sequencePalette = `%%{init: {
  "theme": "base",
  "themeVariables": {
    "actorBkg": "#E6F7FF",
    "actorBorder": "#0A84C1",
    "actorTextColor": "#003A57",
    "signalColor": "#0A84C1",
    "signalTextColor": "#003A57",
    "labelBoxBkgColor": "#EAF7EA",
    "labelBoxBorderColor": "#4CAF50",
    "labelTextColor": "#1B5E20",
    "loopTextColor": "#705400",
    "noteBkgColor": "#FFF8D6",
    "noteBorderColor": "#D69E00",
    "noteTextColor": "#705400",
    "fontFamily": "Inter, sans-serif"
  }
}}%%`

const enhancePromptTemplate = `The user will provide a Mermaid diagram and a description of the desired enhancements. Enhance the diagram accordingly.

When the user asks to "add 'X' under 'Y'", treat it as a hierarchical relationship: create a node for 'X' and draw a one-way arrow from 'Y' to 'X' (Y --> X). Do not create loops or bidirectional arrows unless asked.

THEMING GUIDELINES:
1. If the original diagram contains a theme initialization block (%%%%{init: {...}}%%%%), PRESERVE it.
2. If the original diagram has NO theme block and is NOT an erDiagram, ADD one at the beginning.
   For flowchart/graph, classDiagram, stateDiagram use:
%s
   For sequenceDiagram use:
%s
   For other diagram types (timeline, gantt, gitGraph, journey, mindmap, pie), use the flowchart format as a base.
3. For erDiagram, do NOT add or modify any theme block. Keep the code free of styling.
4. If the user asks for color or theme changes, update the themeVariables accordingly.
5. classDef and class styling MAY be used for flowcharts and state diagrams only.

Original Diagram Code:
'''mermaid
%s
'''

Enhancement Request: %s

Provide the full, enhanced Mermaid diagram code.`

func generateMessages(description string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(generatePromptTemplate, description)},
	}
}

func enhanceMessages(code, request string) []llm.Message {
	return []llm.Message{
		{Role: llm.RoleSystem, Content: systemPrompt},
		{Role: llm.RoleUser, Content: fmt.Sprintf(enhancePromptTemplate, flowchartPalette, sequencePalette, code, request)},
	}
}
