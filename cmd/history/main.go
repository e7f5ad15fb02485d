// Command history browses the persisted meeting archive: list meetings,
// print a transcript, full-text search the index, and prune old records.
// It opens the database read-only unless a delete flag is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"roundtable/domain"
	"roundtable/infrastructure/search"
	"roundtable/infrastructure/storage"
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	BlugeFilepath  string `envconfig:"BLUGE_FILEPATH" required:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

func main() {
	show := flag.String("show", "", "Print the transcript of one meeting")
	query := flag.String("search", "", "Full-text search over transcripts")
	limit := flag.Int("limit", 20, "Max search hits")
	status := flag.String("status", "", "Filter list by status (active|ended)")
	deleteID := flag.String("delete", "", "Delete one meeting and its messages")
	deleteAll := flag.Bool("delete-all", false, "Delete every meeting and message")
	flag.Parse()

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("Config error: ", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	writable := *deleteID != "" || *deleteAll
	db, err := openDB(config.BadgerFilepath, writable)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	meetings := storage.NewMeetingRepository(db, logger)
	messages := storage.NewMessageRepository(db, logger, nil)

	switch {
	case *deleteAll:
		if err := messages.DeleteAll(); err != nil {
			log.Fatal(err)
		}
		if err := meetings.DeleteAll(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("All meetings deleted.")

	case *deleteID != "":
		if err := messages.DeleteFor(*deleteID); err != nil {
			log.Fatal(err)
		}
		if err := meetings.DeleteMeeting(*deleteID); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Meeting %s deleted.\n", *deleteID)

	case *show != "":
		showTranscript(meetings, messages, *show)

	case *query != "":
		searchTranscripts(config.BlugeFilepath, *query, *limit)

	default:
		listMeetings(meetings, messages, *status)
	}
}

func listMeetings(meetings storage.MeetingRepository, messages storage.MessageRepository, status string) {
	var filter *domain.MeetingStatus
	if status != "" {
		s := domain.MeetingStatus(status)
		filter = &s
	}

	summaries, err := meetings.ListMeetings(filter)
	if err != nil {
		log.Fatal(err)
	}

	table := newTable([]string{"ID", "Topic", "Status", "Started", "Messages"})
	for _, s := range summaries {
		count, err := messages.Count(s.ID)
		if err != nil {
			count = 0
		}
		table.Append([]string{
			shortID(s.ID),
			s.Topic,
			string(s.Status),
			s.StartedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", count),
		})
	}
	table.Render()
	fmt.Printf("\n%d meeting(s)\n", len(summaries))
}

func showTranscript(meetings storage.MeetingRepository, messages storage.MessageRepository, id string) {
	meeting, err := meetings.GetMeeting(id)
	if err != nil {
		log.Fatal(err)
	}
	stored, err := messages.GetMessages(id)
	if err != nil {
		log.Fatal(err)
	}

	names := lo.SliceToMap(meeting.Participants, func(p domain.EntityParticipant) (string, string) {
		return p.DeskID, p.Name
	})

	fmt.Printf("Topic: %s (%s, %d messages)\n\n", meeting.Topic, meeting.Status, len(stored))
	table := newTable([]string{"Time", "Round", "Sender", "Content"})
	for _, m := range stored {
		sender := string(m.Kind)
		if name, ok := names[m.SenderDeskID]; ok {
			sender = name
		}
		table.Append([]string{
			m.At.Format("15:04:05"),
			fmt.Sprintf("%d", m.Round),
			sender,
			m.Content,
		})
	}
	table.Render()
}

func searchTranscripts(indexPath, term string, limit int) {
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(indexPath))
	if err != nil {
		log.Fatal("Error while opening Bluge: ", err)
	}
	defer writer.Close()

	index := search.NewTranscriptIndex(writer, logs.GetLoggerFromString("info"))
	hits, err := index.Search(context.Background(), term, limit)
	if err != nil {
		log.Fatal(err)
	}

	table := newTable([]string{"Score", "Meeting", "Message", "Content"})
	for _, h := range hits {
		table.Append([]string{
			fmt.Sprintf("%.3f", h.Score),
			shortID(h.MeetingID),
			shortID(h.MessageID),
			h.Content,
		})
	}
	table.Render()
	fmt.Printf("\n%d hit(s) for %q\n", len(hits), term)
}

func newTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func openDB(path string, writable bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(!writable).
		WithLogger(nil).
		WithBypassLockGuard(true).
		WithValueLogFileSize(10 * 1024 * 1024)

	db, err := badger.Open(opts)
	if err != nil {
		// Corruption after an unclean shutdown needs one writable open to
		// truncate the value log, then the requested mode works again.
		if strings.Contains(err.Error(), "Log truncate required") {
			repairOpts := badger.DefaultOptions(path).
				WithLogger(nil).WithBypassLockGuard(true)

			db, err = badger.Open(repairOpts)
			if err != nil {
				return nil, fmt.Errorf("repair failed: %w", err)
			}
			db.Close()
			return badger.Open(opts)
		}
		return nil, err
	}
	return db, nil
}
