package main

import (
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#D7263D")).
			Padding(0, 1).
			Bold(true)

	urlStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1B98E0"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

// trackerURLs lists the websocket URLs a hand tracker can reach the game on.
// A wildcard listen address expands to every non-loopback IPv4 address.
func trackerURLs(addr string, ifaces []net.Addr) []string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return []string{"ws://" + addr + "/hands"}
	}

	if host != "" && host != "0.0.0.0" && host != "::" {
		return []string{fmt.Sprintf("ws://%s/hands", net.JoinHostPort(host, port))}
	}

	var urls []string
	for _, a := range ifaces {
		ipNet, ok := a.(*net.IPNet)
		if !ok {
			continue
		}
		ip := ipNet.IP
		if ip.IsLoopback() || ip.To4() == nil {
			continue
		}
		urls = append(urls, fmt.Sprintf("ws://%s/hands", net.JoinHostPort(ip.String(), port)))
	}
	return append(urls, fmt.Sprintf("ws://%s/hands", net.JoinHostPort("localhost", port)))
}

func printBanner(w io.Writer, trackerAddr string) {
	fmt.Fprintln(w, titleStyle.Render(" HandPong "))
	fmt.Fprintln(w)

	if trackerAddr == "" {
		fmt.Fprintln(w, hintStyle.Render("Hand tracker disabled, play with the mouse or W/S and the arrow keys"))
		fmt.Fprintln(w)
		return
	}

	ifaces, err := net.InterfaceAddrs()
	if err != nil {
		ifaces = nil
	}
	urls := trackerURLs(trackerAddr, ifaces)

	fmt.Fprintln(w, "Hand trackers can connect to:")
	for _, u := range urls {
		fmt.Fprintln(w, "  "+urlStyle.Render(u))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, hintStyle.Render(strings.Join([]string{
		"Send {\"hands\":[{\"type\":\"Left\",\"bbox\":[x,y,w,h]}]} per camera frame",
		"Press Ctrl+C to stop",
	}, "\n")))
	fmt.Fprintln(w)
}
