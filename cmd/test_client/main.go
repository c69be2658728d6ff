package main

import (
	"context"
	"fmt"
	"log"
	"os"

	mcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultEndpoint = "http://localhost:8080/mcp/stream"

	// Hardcoded test data - each test is independent
	testVacancyID = 1
	missingID     = 999999
)

func main() {
	ctx := context.Background()

	endpoint := os.Getenv("MCP_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "vacancy-atlas-test-client",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, &mcp.StreamableClientTransport{
		Endpoint: endpoint,
	}, nil)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer func() { _ = session.Close() }()

	log.Printf("Connected to server (session ID: %s)\n", session.ID())

	testListTools(ctx, session)
	testVacancyList(ctx, session)
	testVacancyMap(ctx, session)
	testVacancyDetail(ctx, session)

	fmt.Println("\nAll tests completed")
}

func testListTools(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: list tools")

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		log.Printf("list tools failed: %v", err)
		return
	}
	for _, tool := range res.Tools {
		fmt.Printf("  %s: %s\n", tool.Name, tool.Description)
	}
}

func testVacancyList(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: vacancy_list")

	fmt.Println("\n  Test 1: no filter")
	call(ctx, session, "vacancy_list", map[string]any{})

	fmt.Println("\n  Test 2: search and education level")
	call(ctx, session, "vacancy_list", map[string]any{
		"search":    "adviseur",
		"education": "HBO",
	})
}

func testVacancyMap(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: vacancy_map")

	for _, strategy := range []string{"choropleth", "markers"} {
		fmt.Printf("\n  strategy=%s\n", strategy)
		call(ctx, session, "vacancy_map", map[string]any{"strategy": strategy})
	}
}

func testVacancyDetail(ctx context.Context, session *mcp.ClientSession) {
	fmt.Println("\nTEST: vacancy_detail")

	call(ctx, session, "vacancy_detail", map[string]any{"id": testVacancyID})

	// Expected to report "Vacature niet gevonden"
	fmt.Println("\n  missing vacancy")
	call(ctx, session, "vacancy_detail", map[string]any{"id": missingID})
}

func call(ctx context.Context, session *mcp.ClientSession, name string, args map[string]any) {
	result, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		log.Printf("%s failed: %v", name, err)
		return
	}
	if result.IsError {
		fmt.Print("  (tool error) ")
	}
	printResult(result)
}

func printResult(res *mcp.CallToolResult) {
	for _, c := range res.Content {
		if txt, ok := c.(*mcp.TextContent); ok {
			fmt.Println(txt.Text)
		}
	}
}
