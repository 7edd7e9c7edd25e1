package mcp

import "github.com/mark3labs/mcp-go/mcp"

var detectDiagramTypeTool = mcp.NewTool("detect_diagram_type",
	mcp.WithDescription("Classify Mermaid source by its header line and return the diagram type with its theming capabilities."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Mermaid diagram source"),
	),
)

var checkStylingTool = mcp.NewTool("check_styling",
	mcp.WithDescription("Report whether the diagram uses classDef or style directives its type does not honor."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Mermaid diagram source"),
	),
)

var themingLimitationsTool = mcp.NewTool("theming_limitations",
	mcp.WithDescription("Describe the theming limitations of a diagram type, or of every known type when none is given."),
	mcp.WithString("diagram_type",
		mcp.Description("Diagram type such as classDiagram or erDiagram"),
	),
)

var extractThemeBlockTool = mcp.NewTool("extract_theme_block",
	mcp.WithDescription("Return the first %%{init ...}%% block that sets theme or themeVariables."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Mermaid diagram source"),
	),
)

var getExampleTool = mcp.NewTool("get_example",
	mcp.WithDescription("Get a built-in example diagram by slug, or list all slugs when none is given."),
	mcp.WithString("slug",
		mcp.Description("Example slug such as er-diagram"),
	),
)

var generateDiagramTool = mcp.NewTool("generate_diagram",
	mcp.WithDescription("Generate Mermaid code from a natural-language description using the configured language model."),
	mcp.WithString("description",
		mcp.Required(),
		mcp.Description("What the diagram should show"),
	),
)

var enhanceDiagramTool = mcp.NewTool("enhance_diagram",
	mcp.WithDescription("Modify an existing Mermaid diagram according to a request, keeping its theme block."),
	mcp.WithString("diagram_code",
		mcp.Required(),
		mcp.Description("Current Mermaid source"),
	),
	mcp.WithString("enhancement_prompt",
		mcp.Required(),
		mcp.Description("The change to make"),
	),
)
