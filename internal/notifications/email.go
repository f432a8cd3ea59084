package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
)

var ErrNoTemplate = errors.New("no email template for notification kind")

type emailTemplate struct {
	subject string
	body    *template.Template
}

// templateData is what email bodies render against
type templateData struct {
	DisplayName string
	Payload     map[string]interface{}
}

var emailTemplates = map[string]emailTemplate{
	KindMilestoneApproved: {
		subject: "Your milestone was approved",
		body: template.Must(template.New(KindMilestoneApproved).Parse(`
			<html>
				<body>
					<h1>Congrats, {{.DisplayName}}!</h1>
					<p>Your {{index .Payload "tier"}} views milestone was verified.</p>
					{{with index .Payload "reward_name"}}<p>You earned <strong>{{.}}</strong>. Claim it from your dashboard.</p>{{end}}
				</body>
			</html>
		`)),
	},
	KindMilestoneRejected: {
		subject: "Your milestone submission was not approved",
		body: template.Must(template.New(KindMilestoneRejected).Parse(`
			<html>
				<body>
					<p>Hi {{.DisplayName}},</p>
					<p>We could not approve your {{index .Payload "tier"}} milestone claim.</p>
					<p>Reason: {{index .Payload "reason"}}</p>
				</body>
			</html>
		`)),
	},
	KindCompetitionWon: {
		subject: "You placed in a competition!",
		body: template.Must(template.New(KindCompetitionWon).Parse(`
			<html>
				<body>
					<h1>Well done, {{.DisplayName}}!</h1>
					<p>You finished #{{index .Payload "rank"}} in {{index .Payload "competition_name"}}.</p>
					{{with index .Payload "reward_name"}}<p>Your reward: <strong>{{.}}</strong>. Claim it from your dashboard.</p>{{end}}
				</body>
			</html>
		`)),
	},
	KindPeriodWon: {
		subject: "You topped the leaderboard!",
		body: template.Must(template.New(KindPeriodWon).Parse(`
			<html>
				<body>
					<h1>Well done, {{.DisplayName}}!</h1>
					<p>You finished #{{index .Payload "rank"}} on the {{index .Payload "leaderboard_type"}} leaderboard for {{index .Payload "period"}}.</p>
					{{with index .Payload "reward_name"}}<p>Your reward: <strong>{{.}}</strong>. Claim it from your dashboard.</p>{{end}}
				</body>
			</html>
		`)),
	},
	KindRedemptionFulfilled: {
		subject: "Your reward is on its way",
		body: template.Must(template.New(KindRedemptionFulfilled).Parse(`
			<html>
				<body>
					<p>Hi {{.DisplayName}},</p>
					<p>{{index .Payload "reward_name"}} has been fulfilled.</p>
					{{with index .Payload "tracking_number"}}<p>Tracking number: {{.}}</p>{{end}}
					{{with index .Payload "store_credit_code"}}<p>Store credit code: <strong>{{.}}</strong></p>{{end}}
				</body>
			</html>
		`)),
	},
}

// EmailChannel emails the recipient creator at their address on file
type EmailChannel struct {
	mailer   Mailer
	creators CreatorLookup
}

func NewEmailChannel(mailer Mailer, creators CreatorLookup) *EmailChannel {
	return &EmailChannel{
		mailer:   mailer,
		creators: creators,
	}
}

func (c *EmailChannel) Name() string { return "email" }

func (c *EmailChannel) Send(ctx context.Context, n Notification) error {
	tmpl, ok := emailTemplates[n.Kind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoTemplate, n.Kind)
	}

	creator, err := c.creators.GetCreatorByID(ctx, n.Recipient)
	if err != nil {
		return fmt.Errorf("failed to look up recipient: %w", err)
	}
	if creator.Email == "" {
		return nil
	}

	var body bytes.Buffer
	if err := tmpl.body.Execute(&body, templateData{DisplayName: creator.DisplayName, Payload: n.Payload}); err != nil {
		return fmt.Errorf("failed to render %s email: %w", n.Kind, err)
	}

	_, err = c.mailer.SendEmail(ctx, creator.Email, tmpl.subject, body.String())
	return err
}
