package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomrelay/internal/proto"
)

type options struct {
	addr     string
	room     string
	id       string
	tag      string
	radius   float64
	interval time.Duration
	timeout  time.Duration
	shoot    bool
}

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ws_bot: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "ws_bot",
		Short:         "Join a room, walk in a circle and print what the server sends",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.id == "" {
				opts.id = "bot-" + uuid.NewString()[:8]
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return run(ctx, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.addr, "addr", "ws://localhost:3000/ws", "WebSocket address")
	flags.StringVar(&opts.room, "room", "r1", "room name")
	flags.StringVar(&opts.id, "id", "", "member id (random when empty)")
	flags.StringVar(&opts.tag, "tag", "bot", "display tag")
	flags.Float64Var(&opts.radius, "radius", 20, "circle radius in world units")
	flags.DurationVar(&opts.interval, "interval", 50*time.Millisecond, "move interval")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "total run time")
	flags.BoolVar(&opts.shoot, "shoot", false, "fire a shot once per second")
	return cmd
}

func run(ctx context.Context, opts options) error {
	conn, _, err := websocket.Dial(ctx, opts.addr, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	join := map[string]string{"type": proto.InboundTypeJoin, "room": opts.room, "id": opts.id, "tag": opts.tag}
	if err := wsjson.Write(ctx, conn, join); err != nil {
		return fmt.Errorf("send join: %w", err)
	}
	fmt.Printf("joined room=%s id=%s\n", opts.room, opts.id)

	go walk(ctx, conn, opts)

	for {
		_, raw, err := conn.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		var inbound proto.Inbound
		if err := json.Unmarshal(raw, &inbound); err != nil {
			fmt.Printf("unparseable frame: %s\n", raw)
			continue
		}

		switch inbound.Type {
		case proto.OutboundTypeState:
			var state proto.StateMessage
			if err := json.Unmarshal(raw, &state); err == nil {
				fmt.Printf("state: %d players\n", len(state.Players))
			}
		case proto.OutboundTypeLeft:
			var left proto.LeftMessage
			if err := json.Unmarshal(raw, &left); err == nil {
				fmt.Printf("left: id=%s\n", left.ID)
			}
		default:
			fmt.Printf("%s: %s\n", inbound.Type, raw)
		}
	}
}

func walk(ctx context.Context, conn *websocket.Conn, opts options) {
	ticker := time.NewTicker(opts.interval)
	defer ticker.Stop()

	start := time.Now()
	lastShot := start
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			angle := now.Sub(start).Seconds()
			move := map[string]any{
				"type": proto.InboundTypeMove,
				"x":    opts.radius * math.Cos(angle),
				"y":    0,
				"z":    opts.radius * math.Sin(angle),
				"ry":   math.Mod(angle, 2*math.Pi),
			}
			if err := wsjson.Write(ctx, conn, move); err != nil {
				return
			}
			if opts.shoot && now.Sub(lastShot) >= time.Second {
				lastShot = now
				shot := map[string]any{"type": proto.InboundTypeShoot, "from": opts.id, "dir": angle}
				if err := wsjson.Write(ctx, conn, shot); err != nil {
					return
				}
			}
		}
	}
}
