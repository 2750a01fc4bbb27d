package notify

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	bCtx "github.com/x-xyz/asteroid-market/base/ctx"
	"github.com/x-xyz/asteroid-market/domain/purchase"
)

type DiscordCfg struct {
	DiscordBotKey    string
	DiscordChannelId string
	// ExplorerUrl prefixes tx hashes in messages, ex: https://www.mintscan.io/cosmos/tx
	ExplorerUrl string
}

type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed) (*discordgo.Message, error)
}

type discordNotifier struct {
	cfg     DiscordCfg
	discord embedSender
}

// NewDiscord posts terminal flows to a discord channel, a nop notifier is returned without a bot key
func NewDiscord(cfg DiscordCfg) (purchase.Notifier, error) {
	if cfg.DiscordBotKey == "" || cfg.DiscordChannelId == "" {
		return NewNop(), nil
	}
	discord, err := discordgo.New(fmt.Sprintf("Bot %s", cfg.DiscordBotKey))
	if err != nil {
		return nil, err
	}
	return &discordNotifier{cfg, discord}, nil
}

func (n *discordNotifier) Notify(c bCtx.Ctx, flow *purchase.Flow) error {
	msg := n.embed(flow)
	if msg == nil {
		return nil
	}
	if _, err := n.discord.ChannelMessageSendEmbed(n.cfg.DiscordChannelId, msg); err != nil {
		c.WithField("err", err).Error("discord.ChannelMessageSendEmbed failed")
		return err
	}
	return nil
}

func (n *discordNotifier) embed(flow *purchase.Flow) *discordgo.MessageEmbed {
	hashes := make([]string, len(flow.ListingHashes))
	for i, h := range flow.ListingHashes {
		hashes[i] = h.String()
	}
	fields := []*discordgo.MessageEmbedField{
		{Name: "Buyer", Value: flow.Buyer.String()},
		{Name: "Kind", Value: string(flow.Kind), Inline: true},
		{Name: "Listings", Value: strings.Join(hashes, "\n")},
	}

	switch flow.State {
	case purchase.StatePurchased:
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Buy tx", Value: n.txLink(flow.BuyTxHash.String())})
		return &discordgo.MessageEmbed{
			Title:       "Purchase complete",
			Description: fmt.Sprintf("flow %s", flow.Id),
			Color:       0x2ecc71,
			Fields:      fields,
		}
	case purchase.StateFailed:
		fields = append(fields,
			&discordgo.MessageEmbedField{Name: "Step", Value: string(flow.FailedStep), Inline: true},
			&discordgo.MessageEmbedField{Name: "Error", Value: flow.LastError},
		)
		return &discordgo.MessageEmbed{
			Title:       "Purchase failed",
			Description: fmt.Sprintf("flow %s", flow.Id),
			Color:       0xe74c3c,
			Fields:      fields,
		}
	}
	return nil
}

func (n *discordNotifier) txLink(hash string) string {
	if n.cfg.ExplorerUrl == "" {
		return hash
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(n.cfg.ExplorerUrl, "/"), hash)
}
