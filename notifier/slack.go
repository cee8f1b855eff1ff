package notifier

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"

	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type slackNotifier struct {
	webHookURL string
}

func NewSlackNotifier(webHookURL string) Notifier {
	return &slackNotifier{webHookURL: webHookURL}
}

func (sn *slackNotifier) Name() string {
	return SlackNotifierName
}

func (sn *slackNotifier) Notify(data any) {
	result, ok := data.(model.CheckResult)
	if !ok {
		return
	}
	if err := sn.sendMessage(result); err != nil {
		logrus.Errorf("send token %s's check result to slack is err %v", result.Token, err)
	}
}

func (sn *slackNotifier) composeMessage(result *model.CheckResult) string {
	flags := make([]string, 0, len(result.Flags))
	for _, flag := range result.Flags {
		flags = append(flags, string(flag))
	}

	text := fmt.Sprintf("*Token:* `%s`\n", result.Token)
	text += fmt.Sprintf("*Chain:* `%s`\n", result.Chain)
	text += fmt.Sprintf("*Score:* `%d`\n", result.Safety.Score)
	text += fmt.Sprintf("*Grade:* `%s`\n", result.Safety.Grade)
	text += fmt.Sprintf("*Recommendation:* `%s`\n", result.Safety.Recommendation)
	text += fmt.Sprintf("*Flags:* `%s`\n", strings.Join(flags, ","))
	text += fmt.Sprintf("*Summary:* %s\n", result.Safety.Summary)
	text += fmt.Sprintf("*Liquidity USD:* `%.0f`\n", result.Liquidity.TotalUSD)
	return text
}

func (sn *slackNotifier) sendMessage(result model.CheckResult) error {
	summary := fmt.Sprintf("⚠️ Detected a high risk token on %s, score %d ⚠️\n", strings.ToUpper(result.Chain), result.Safety.Score)
	attachment := slack.Attachment{
		Color:      "danger",
		AuthorName: "SafeTradeScout",
		Fallback:   summary,
		Text:       summary + sn.composeMessage(&result),
		Footer:     fmt.Sprintf("scout-on-%s", result.Chain),
		Ts:         json.Number(strconv.FormatInt(time.Now().Unix(), 10)),
	}
	msg := slack.WebhookMessage{
		Attachments: []slack.Attachment{attachment},
	}
	return slack.PostWebhook(sn.webHookURL, &msg)
}
