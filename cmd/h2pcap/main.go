// Command h2pcap decodes HTTP/2 frames out of an offline pcap capture. It
// does no TCP reassembly beyond simple per-flow append-in-packet-order: a
// capture with retransmissions or out-of-order segments will not decode
// correctly. For a quick look at what a capture carries, that's enough.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/gopacket/gopacket/pcapgo"

	http2 "github.com/domsolutions/h2dec"
)

type flowKey struct {
	srcIP, dstIP     string
	srcPort, dstPort uint16
}

type flowState struct {
	decoder *http2.Http2FrameDecoder
}

func main() {
	path := flag.String("file", "", "path to a pcap file")
	port := flag.Uint("port", 443, "TCP port carrying HTTP/2 traffic")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "usage: h2pcap -file capture.pcap [-port 443]")
		os.Exit(2)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("h2pcap: %v", err)
	}
	defer f.Close()

	reader, err := pcapgo.NewReader(f)
	if err != nil {
		log.Fatalf("h2pcap: %v", err)
	}

	flows := map[flowKey]*flowState{}

	for {
		data, _, err := reader.ReadPacketData()
		if err != nil {
			break
		}
		pkt := gopacket.NewPacket(data, reader.LinkType(), gopacket.Lazy)
		tcpLayer := pkt.Layer(layers.LayerTypeTCP)
		if tcpLayer == nil {
			continue
		}
		tcp := tcpLayer.(*layers.TCP)
		if uint16(tcp.SrcPort) != uint16(*port) && uint16(tcp.DstPort) != uint16(*port) {
			continue
		}
		if len(tcp.Payload) == 0 {
			continue
		}

		key := flowKeyFor(pkt, tcp)
		fs, ok := flows[key]
		if !ok {
			fs = &flowState{decoder: http2.NewHttp2FrameDecoder(&loggingListener{key: key})}
			flows[key] = fs
		}

		buf := http2.NewDecodeBuffer(tcp.Payload)
		if st := fs.decoder.DecodeFrame(&buf); st == http2.StatusError {
			log.Printf("h2pcap: flow %+v: decode error, dropping", key)
			delete(flows, key)
		}
	}
}

func flowKeyFor(pkt gopacket.Packet, tcp *layers.TCP) flowKey {
	var src, dst string
	if v4 := pkt.Layer(layers.LayerTypeIPv4); v4 != nil {
		ip := v4.(*layers.IPv4)
		src, dst = ip.SrcIP.String(), ip.DstIP.String()
	} else if v6 := pkt.Layer(layers.LayerTypeIPv6); v6 != nil {
		ip := v6.(*layers.IPv6)
		src, dst = ip.SrcIP.String(), ip.DstIP.String()
	}
	return flowKey{
		srcIP:   src,
		dstIP:   dst,
		srcPort: uint16(tcp.SrcPort),
		dstPort: uint16(tcp.DstPort),
	}
}

// loggingListener prints every frame header and frame size error to
// stdout, prefixed with the flow it belongs to. It does not print or
// decode HPACK fragments: decompressing header blocks from a live capture needs a
// dynamic table seeded from both directions' SETTINGS, which a single
// offline pass over one flow can't reliably reconstruct.
type loggingListener struct {
	http2.NoopListener
	key flowKey
}

func (l *loggingListener) OnFrameHeader(h http2.Header) {
	fmt.Printf("%s:%d -> %s:%d  stream=%d  %s  len=%d\n",
		l.key.srcIP, l.key.srcPort, l.key.dstIP, l.key.dstPort, h.Stream(), h.Type(), h.Length())
}

func (l *loggingListener) OnFrameSizeError(h http2.Header) {
	fmt.Printf("  !! frame size error on stream %d\n", h.Stream())
}
