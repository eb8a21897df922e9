package cli

import "fmt"

type DigestCmd struct {
	Enable  DigestEnableCmd  `cmd:"" help:"Turn on the daily digest notification."`
	Disable DigestDisableCmd `cmd:"" help:"Turn off the daily digest notification."`
	Status  DigestStatusCmd  `cmd:"" default:"1" help:"Show the digest schedule."`
}

type DigestEnableCmd struct{}

func (c *DigestEnableCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.DailyDigestEnabled = true
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	if err := ctx.Digest.ScheduleNext(); err != nil {
		return err
	}
	fmt.Println("Daily digest enabled.")
	return nil
}

type DigestDisableCmd struct{}

func (c *DigestDisableCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	settings.DailyDigestEnabled = false
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}
	if err := ctx.Digest.CancelAll(); err != nil {
		return err
	}
	fmt.Println("Daily digest disabled.")
	return nil
}

type DigestStatusCmd struct{}

func (c *DigestStatusCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	state, err := ctx.Store.GetDigestState()
	if err != nil {
		return err
	}

	if !settings.DailyDigestEnabled {
		fmt.Println("Daily digest is disabled.")
		return nil
	}
	if state.Pending && state.EarliestFire != nil {
		fmt.Printf("Next digest no earlier than %s\n", state.EarliestFire.Format("2006-01-02 15:04"))
	} else {
		fmt.Println("Daily digest is enabled, no request pending yet.")
	}
	return nil
}
