package notifier

import (
	"fmt"
	"strings"

	"github.com/go-lark/lark"
	"github.com/go-lark/lark/card"
	"github.com/sirupsen/logrus"

	"github.com/obadiaha/safe-trade-scout-v2/model"
)

type larkNotifier struct {
	larkBot *lark.Bot
}

type LarkCard struct {
	Title      string
	ColumnSets []LarkColumnSet
}

type LarkColumnSet struct {
	Name    string
	Columns []LarkColumn
}

type LarkColumn struct {
	Name   string
	Value  string
	Weight int
}

func NewLarkNotifier(webHookURL string) Notifier {
	return &larkNotifier{larkBot: lark.NewNotificationBot(webHookURL)}
}

func (ln *larkNotifier) Name() string {
	return LarkNotifierName
}

func (ln *larkNotifier) Notify(data any) {
	result, ok := data.(model.CheckResult)
	if !ok {
		return
	}
	msg := lark.NewMsgBuffer(lark.MsgInteractive)
	cardString := ln.ComposeCard(ln.composeCheckCard(&result)).String()
	if _, err := ln.larkBot.PostNotificationV2(msg.Card(cardString).Build()); err != nil {
		logrus.Errorf("send token %s's check result to lark is err: %v", result.Token, err)
	}
}

func (ln *larkNotifier) composeCheckCard(result *model.CheckResult) LarkCard {
	flags := make([]string, 0, len(result.Flags))
	for _, flag := range result.Flags {
		flags = append(flags, string(flag))
	}

	return LarkCard{
		Title: fmt.Sprintf("High risk token on %s, score %d", strings.ToUpper(result.Chain), result.Safety.Score),
		ColumnSets: []LarkColumnSet{
			{Columns: []LarkColumn{
				{Name: "Token", Value: result.Token, Weight: 1},
				{Name: "Chain", Value: result.Chain, Weight: 1},
			}},
			{Columns: []LarkColumn{
				{Name: "Grade", Value: string(result.Safety.Grade), Weight: 1},
				{Name: "Recommendation", Value: string(result.Safety.Recommendation), Weight: 1},
			}},
			{Name: "HR"},
			{Columns: []LarkColumn{
				{Name: "Flags", Value: strings.Join(flags, ","), Weight: 2},
			}},
			{Columns: []LarkColumn{
				{Name: "Summary", Value: result.Safety.Summary, Weight: 2},
			}},
		},
	}
}

func (ln *larkNotifier) ComposeCard(data LarkCard) *card.Block {
	builder := lark.NewCardBuilder()
	elements := []card.Element{}
	for _, set := range data.ColumnSets {
		if set.Name == "HR" {
			elements = append(elements, builder.Hr())
		} else {
			elements = append(elements, ln.ComposeColumnSet(builder, set.Columns))
		}
	}

	return builder.Card(elements...).Title(data.Title).Red()
}

func (ln *larkNotifier) ComposeColumnSet(builder *lark.CardBuilder, larkColumns []LarkColumn) *card.ColumnSetBlock {
	columns := []*card.ColumnBlock{}
	for _, column := range larkColumns {
		columns = append(columns, ln.ComposeColumn(builder, column.Name, column.Value, column.Weight))
	}

	return builder.ColumnSet(columns...).
		FlexMode("bisect").
		HorizontalSpacing("default")
}

func (ln *larkNotifier) ComposeColumn(builder *lark.CardBuilder, key string, value any, weight int) *card.ColumnBlock {
	text := builder.Text(fmt.Sprintf("**%s:**\n%s", key, value)).LarkMd()

	return builder.Column(
		builder.Div().Text(text)).
		VerticalAlign("top").
		Width("weighted").
		Weight(weight)
}
