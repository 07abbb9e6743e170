package cli

import (
	"context"
	"fmt"
)

func (a *App) Like(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter poem id")
	if err != nil {
		return err
	}
	if err := a.api.Like(ctx, id); err != nil {
		return a.check(ctx, err)
	}
	return a.printLikes(ctx, id)
}

func (a *App) Unlike(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter poem id")
	if err != nil {
		return err
	}
	if err := a.api.Unlike(ctx, id); err != nil {
		return a.check(ctx, err)
	}
	return a.printLikes(ctx, id)
}

func (a *App) printLikes(ctx context.Context, id int64) error {
	c, err := a.api.LikeCount(ctx, id)
	if err != nil {
		return a.check(ctx, err)
	}
	fmt.Fprintf(a.out, "Poem #%d has %d like(s)\n", id, c.Total)
	return nil
}

func (a *App) Comment(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter poem id")
	if err != nil {
		return err
	}
	body, err := readLine(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}

	c, err := a.api.AddComment(ctx, id, body)
	if err != nil {
		return a.check(ctx, err)
	}
	fmt.Fprintf(a.out, "Added comment #%d\n", c.ID)
	return nil
}

func (a *App) Comments(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter poem id")
	if err != nil {
		return err
	}

	list, err := a.api.Comments(ctx, id)
	if err != nil {
		return a.check(ctx, err)
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No comments yet")
		return nil
	}
	for _, c := range list {
		printComment(a.out, c)
	}
	return nil
}

func (a *App) EditComment(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter comment id")
	if err != nil {
		return err
	}
	body, err := readLine(a.reader, "Enter comment", a.out)
	if err != nil {
		return err
	}

	if _, err := a.api.UpdateComment(ctx, id, body); err != nil {
		return a.check(ctx, err)
	}
	fmt.Fprintf(a.out, "Updated comment #%d\n", id)
	return nil
}

func (a *App) DeleteComment(ctx context.Context, args []string) error {
	id, err := a.idArg(args, "Enter comment id")
	if err != nil {
		return err
	}
	if err := a.api.DeleteComment(ctx, id); err != nil {
		return a.check(ctx, err)
	}
	fmt.Fprintf(a.out, "Deleted comment #%d\n", id)
	return nil
}
