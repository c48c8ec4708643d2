/*
Package quotesort keeps a site's quotes file in order.

The quotes file is a JSON document of the form

	{"quotes": [["<text>", "<author>"], ...]}

stored at public/quotes.json under the project directory. Sorting orders
the entries by author (the second element) ascending, keeping the input
order of entries that share an author, and rewrites the file with
four-space indentation and literal non-ASCII text.

# Usage

	eng := quotesort.New(".")
	res, err := eng.Sort(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("sorted %d quotes\n", res.Count)

The same Engine also checks order without writing (Check) and picks a
quote of the day (QuoteOfTheDay). Storage is pluggable through
ports.QuoteStore; see package memory for an in-memory store.
*/
package quotesort
