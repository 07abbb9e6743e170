package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/puisi/internal/apiclient"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

func (a *App) Feed(ctx context.Context) error {
	list, err := a.api.ListPosts(ctx)
	if err != nil {
		return a.check(ctx, err)
	}
	printPosts(a.out, list)
	return nil
}

// Mine lists the caller's poems, private ones included.
func (a *App) Mine(ctx context.Context) error {
	if !a.isLoggedIn() {
		return apiclient.ErrNotLoggedIn
	}
	list, err := a.api.ListUserPosts(ctx, a.user.ID)
	if err != nil {
		return a.check(ctx, err)
	}
	printPosts(a.out, list)
	return nil
}

// Show prints one poem with its like and comment counters and comments.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter poem id")
	if err != nil {
		return err
	}

	p, err := a.api.GetPost(ctx, id)
	if err != nil {
		return a.check(ctx, err)
	}
	likes, err := a.api.LikeCount(ctx, id)
	if err != nil {
		return a.check(ctx, err)
	}
	comments, err := a.api.Comments(ctx, id)
	if err != nil {
		return a.check(ctx, err)
	}

	printPost(a.out, p)
	liked := ""
	if a.isLoggedIn() {
		if ok, err := a.api.Liked(ctx, id); err == nil && ok {
			liked = " (you like this)"
		}
	}
	fmt.Fprintf(a.out, "♥ %d%s  ✎ %d\n", likes.Total, liked, len(comments))
	for _, c := range comments {
		printComment(a.out, c)
	}
	return nil
}

func (a *App) Post(ctx context.Context) error {
	title, err := readLine(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	body, err := readPoem(a.reader, "Enter poem", a.out)
	if err != nil {
		return err
	}
	public, err := a.askVisibility("Public? [Y/n]", true)
	if err != nil {
		return err
	}

	p, err := a.api.CreatePost(ctx, models.PostRequest{Title: title, Body: body, IsPublic: &public})
	if err != nil {
		return a.check(ctx, err)
	}
	fmt.Fprintf(a.out, "Created poem #%d\n", p.ID)
	return nil
}

// Edit rewrites a poem. Empty answers keep the current title, body and
// visibility.
func (a *App) Edit(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter poem id")
	if err != nil {
		return err
	}

	current, err := a.api.GetPost(ctx, id)
	if err != nil {
		return a.check(ctx, err)
	}

	title, err := readLineOr(a.reader, "Enter title", current.Title, a.out)
	if err != nil {
		return err
	}

	body, err := readPoem(a.reader, "Enter poem (an empty poem keeps the current text)", a.out)
	if err != nil {
		return err
	}
	if body == "" {
		body = current.Body
	}

	public, err := a.askVisibility(fmt.Sprintf("Public? [%s]", yesNo(current.IsPublic)), current.IsPublic)
	if err != nil {
		return err
	}

	p, err := a.api.UpdatePost(ctx, id, models.PostRequest{Title: title, Body: body, IsPublic: &public})
	if err != nil {
		return a.check(ctx, err)
	}
	fmt.Fprintf(a.out, "Updated poem #%d\n", p.ID)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter poem id")
	if err != nil {
		return err
	}
	if err := a.api.DeletePost(ctx, id); err != nil {
		return a.check(ctx, err)
	}
	fmt.Fprintf(a.out, "Deleted poem #%d\n", id)
	return nil
}

func (a *App) askVisibility(prompt string, def bool) (bool, error) {
	answer, err := readLine(a.reader, prompt, a.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return def, nil
	}
}
