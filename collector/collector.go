// Package collector is a reference consumer of the datamodel store: it
// captures 1905 topology-discovery and LLDP bridge-discovery frames off the
// wire and feeds their timestamps into datamodel.Store.UpdateDiscoveryTimestamps.
// It plays the role spec.md assigns to "discovery handlers" without being
// part of the data model itself.
package collector

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"

	"al1905d/datamodel"
)

// topologyDiscoveryMulticast is the IEEE 1905.1 multicast destination for
// topology-discovery messages (01:80:C2:00:13:10).
var topologyDiscoveryMulticast = net.HardwareAddr{0x01, 0x80, 0xc2, 0x00, 0x13, 0x10}

// bridgeDiscoveryMulticast is the nearest-bridge LLDP multicast address
// (01:80:C2:00:00:0E), used here as the bridge-discovery signal per
// spec.md's C3 (the same address the IEEE 802.1AB nearest-bridge group
// uses, and what the teacher's LLDP listener already captures).
var bridgeDiscoveryMulticast = net.HardwareAddr{0x01, 0x80, 0xc2, 0x00, 0x00, 0x0e}

const topologyDiscoveryALMACTLVType = 1 // 1905 TLV_TYPE_AL_MAC_ADDRESS_TYPE

// ErrInterfaceNotFound is returned when the requested interface doesn't exist.
var ErrInterfaceNotFound = errors.New("interface not found")

// ErrInterfaceDown is returned when the requested interface is administratively down.
var ErrInterfaceDown = errors.New("interface is down")

// Collector captures 1905 topology-discovery and LLDP bridge-discovery
// frames on one interface and applies their timestamps to a store.
type Collector struct {
	handle    *pcap.Handle
	iface     string
	ifaceMAC  datamodel.MAC
	store     *datamodel.Store
	ownsHandle bool
}

// New opens a live capture on ifaceName, filtered to the two multicast
// destinations this collector understands.
func New(store *datamodel.Store, ifaceName string, ifaceMAC datamodel.MAC) (*Collector, error) {
	if runtime.GOOS != "windows" {
		iface, err := net.InterfaceByName(ifaceName)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInterfaceNotFound, ifaceName)
		}
		if iface.Flags&net.FlagUp == 0 {
			return nil, fmt.Errorf("%w: %s", ErrInterfaceDown, ifaceName)
		}
	}

	handle, err := pcap.OpenLive(ifaceName, 65535, true, pcap.BlockForever)
	if err != nil {
		return nil, fmt.Errorf("opening interface %s: %w", ifaceName, err)
	}

	filter := "ether dst 01:80:c2:00:13:10 or ether dst 01:80:c2:00:00:0e"
	if err := handle.SetBPFFilter(filter); err != nil {
		handle.Close()
		return nil, fmt.Errorf("setting BPF filter on %s: %w", ifaceName, err)
	}

	return &Collector{
		handle:     handle,
		iface:      ifaceName,
		ifaceMAC:   ifaceMAC,
		store:      store,
		ownsHandle: true,
	}, nil
}

// Run reads packets until ctx is cancelled, applying each recognized frame
// to the store. It returns when ctx is done or the capture handle errors out.
func (c *Collector) Run(ctx context.Context) error {
	defer func() {
		if c.ownsHandle {
			c.handle.Close()
		}
	}()

	packetSource := gopacket.NewPacketSource(c.handle, c.handle.LinkType())
	packetSource.NoCopy = true

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case packet, ok := <-packetSource.Packets():
			if !ok {
				return nil
			}
			c.handlePacket(packet)
		}
	}
}

func (c *Collector) handlePacket(packet gopacket.Packet) {
	ethLayer := packet.Layer(layers.LayerTypeEthernet)
	if ethLayer == nil {
		return
	}
	eth := ethLayer.(*layers.Ethernet)

	switch eth.DstMAC.String() {
	case topologyDiscoveryMulticast.String():
		c.handleTopologyDiscovery(packet, eth)
	case bridgeDiscoveryMulticast.String():
		c.handleBridgeDiscovery(packet, eth)
	}
}

// handleTopologyDiscovery extracts the neighbor AL MAC from the
// AL-MAC-address TLV carried in a 1905 topology-discovery message's payload
// and records a topology-discovery timestamp for the link.
func (c *Collector) handleTopologyDiscovery(packet gopacket.Packet, eth *layers.Ethernet) {
	alMAC, ok := extractALMACTLV(eth.Payload)
	if !ok {
		return
	}

	neighborIfaceMAC, ok := macFrom(eth.SrcMAC)
	if !ok {
		return
	}

	c.store.UpdateDiscoveryTimestamps(c.ifaceMAC, alMAC, neighborIfaceMAC, datamodel.TimestampTopologyDiscovery)
}

// handleBridgeDiscovery extracts the neighbor AL MAC from the LLDP chassis
// ID TLV (when it carries a MAC address) and records a bridge-discovery
// timestamp for the link.
func (c *Collector) handleBridgeDiscovery(packet gopacket.Packet, eth *layers.Ethernet) {
	lldpLayer := packet.Layer(layers.LayerTypeLinkLayerDiscovery)
	if lldpLayer == nil {
		return
	}
	lldp := lldpLayer.(*layers.LinkLayerDiscovery)

	if lldp.ChassisID.Subtype != layers.LLDPChassisIDSubTypeMACAddr || len(lldp.ChassisID.ID) != 6 {
		return
	}
	alMAC, ok := macFrom(net.HardwareAddr(lldp.ChassisID.ID))
	if !ok {
		return
	}

	neighborIfaceMAC, ok := macFrom(eth.SrcMAC)
	if !ok {
		return
	}

	c.store.UpdateDiscoveryTimestamps(c.ifaceMAC, alMAC, neighborIfaceMAC, datamodel.TimestampBridgeDiscovery)
}

// extractALMACTLV walks a raw 1905 TLV stream (type[1] length[2BE] value)
// looking for the AL-MAC-address TLV. This is intentionally minimal: no
// general TLV codec lives in this repo (spec.md §6 keeps wire encode/decode
// out of scope), so only the one TLV this collector needs is recognized.
func extractALMACTLV(payload []byte) (datamodel.MAC, bool) {
	i := 0
	for i+3 <= len(payload) {
		tlvType := payload[i]
		length := int(payload[i+1])<<8 | int(payload[i+2])
		start := i + 3
		end := start + length
		if end > len(payload) {
			return datamodel.MAC{}, false
		}
		if tlvType == topologyDiscoveryALMACTLVType && length == 6 {
			var mac datamodel.MAC
			copy(mac[:], payload[start:end])
			return mac, true
		}
		if tlvType == 0 { // TLV_TYPE_END_OF_MESSAGE
			break
		}
		i = end
	}
	return datamodel.MAC{}, false
}

func macFrom(hw net.HardwareAddr) (datamodel.MAC, bool) {
	if len(hw) != 6 {
		return datamodel.MAC{}, false
	}
	var mac datamodel.MAC
	copy(mac[:], hw)
	return mac, true
}

// Close releases the capture handle if this collector owns it.
func (c *Collector) Close() {
	if c.ownsHandle {
		c.handle.Close()
	}
}
