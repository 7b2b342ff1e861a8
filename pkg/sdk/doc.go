// Package shelfwise provides an embedded Go client for the shelfwise
// book catalog: natural-language query understanding and retrieval
// backed by Redis with the RediSearch module.
//
// The client wires the full pipeline in-process, so it talks to Redis
// directly instead of going through the HTTP API:
//
//	client, _ := shelfwise.New(ctx,
//	    shelfwise.WithRedis("localhost:6379", ""),
//	    shelfwise.WithEmbedder(myEmbedder),
//	    shelfwise.WithDimensions(1536),
//	)
//	defer client.Close()
//
//	_, _ = client.IndexBooks(ctx, books)
//	resp, _ := client.Query(ctx, "find fantasy books under $20")
//	fmt.Println(resp.Answer)
package shelfwise
