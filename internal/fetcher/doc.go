// Package fetcher downloads raw document text for chunking.
//
// A locator is joined with the configured base URL (raw GitHub contents by
// default) and fetched with a single GET request. Absolute http(s) URLs are
// requested as-is. There is no retry and no caching: a failed download is
// reported to the caller unchanged.
//
//	f := fetcher.New(fetcher.DefaultConfig())
//	text, err := f.Fetch(ctx, "BenGale93/cli-diary/refs/heads/master/README.md")
//	if err != nil {
//	    var statusErr *fetcher.StatusError
//	    if errors.As(err, &statusErr) {
//	        log.Printf("server answered %d", statusErr.StatusCode)
//	    }
//	}
//
// Configuration can also come from the environment, see NewFromEnv.
package fetcher
