package cmd

var (
	flagCompact     bool
	flagCount       bool
	flagDepth       bool
	flagNoDisplay   bool
	flagFixedString bool
	flagWithPath    bool
	flagNoPath      bool
	flagMaxDepth    int
	flagQueryFile   string
	flagStats       bool
)
