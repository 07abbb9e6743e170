package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/puisi/internal/apiclient"
	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

var errBadID = errors.New("id must be a positive number")

// idArg takes the id from the first argument, or asks for it.
func (a *App) idArg(args []string, prompt string) (int64, error) {
	var raw string
	if len(args) > 0 {
		raw = args[0]
	} else {
		s, err := readLine(a.reader, prompt, a.out)
		if err != nil {
			return 0, err
		}
		raw = s
	}

	id, err := strconv.ParseInt(strings.TrimPrefix(raw, "#"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errBadID
	}
	return id, nil
}

func yesNo(b bool) string {
	if b {
		return "Y/n"
	}
	return "y/N"
}

const timeLayout = "2006-01-02 15:04"

func printPost(w io.Writer, p *models.Post) {
	visibility := ""
	if !p.IsPublic {
		visibility = " [private]"
	}
	fmt.Fprintf(w, "#%d %s%s\nby %s, %s\n\n%s\n\n", p.ID, p.Title, visibility, p.UserName, p.CreatedAt.Local().Format(timeLayout), p.Body)
}

func printPosts(w io.Writer, list []*models.Post) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No poems yet")
		return
	}
	for _, p := range list {
		visibility := ""
		if !p.IsPublic {
			visibility = " [private]"
		}
		fmt.Fprintf(w, "#%-4d %-30s %s%s\n", p.ID, p.Title, p.UserName, visibility)
	}
}

func printComment(w io.Writer, c *models.Comment) {
	fmt.Fprintf(w, "  [%d] %s: %s\n", c.ID, c.UserName, c.Body)
}

// describe turns a command error into a line for the user.
func describe(err error) string {
	var apiErr *apiclient.APIError
	switch {
	case errors.Is(err, apiclient.ErrNotLoggedIn):
		return "please log in first"
	case errors.Is(err, apiclient.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, common.ErrorForbidden):
		return "you can only change your own poems and comments"
	case errors.As(err, &apiErr) && apiErr.Message != "":
		return apiErr.Message
	default:
		return err.Error()
	}
}
