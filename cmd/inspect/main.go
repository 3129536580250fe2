// Command inspect prints the payment markers of a badger dedupe store.
package main

import (
	"chat-relay/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "./data/dedupe", "Path to badger DB")
	account := flag.String("payer", "", "Only show payments of this account")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	markers, err := repositories.NewDedupeRepository(db, logs.GetLoggerFromString("ERROR")).Markers()
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Transaction ID", "Payer", "Value", "Version"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	shown := 0
	for _, marker := range markers {
		payer, _, _ := strings.Cut(marker.TxID, "@")
		if *account != "" && payer != *account {
			continue
		}
		table.Append([]string{marker.TxID, payer, marker.Value, strconv.FormatUint(marker.Version, 10)})
		shown++
	}
	table.Render()
	fmt.Printf("%d marker(s)\n", shown)
}

// openDB opens read-only so it can run next to a live relay.
func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)
	return badger.Open(opts)
}
