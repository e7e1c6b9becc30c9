package platform

import (
	"errors"
	"fmt"

	"al1905d/datamodel"
)

// SeedLocalInterfaces enumerates the host's wired Ethernet interfaces and
// inserts each into the store's local interface table (C2). It returns the
// interfaces it was able to insert; a per-interface InsertFail is logged to
// the caller via the returned error rather than aborting the whole scan.
func SeedLocalInterfaces(store *datamodel.Store) ([]string, error) {
	ifaces, err := GetEthernetInterfaces()
	if err != nil {
		return nil, fmt.Errorf("enumerating interfaces: %w", err)
	}

	var seeded []string
	var errs []error
	for _, iface := range ifaces {
		if len(iface.MAC) != 6 {
			continue
		}
		var mac datamodel.MAC
		copy(mac[:], iface.MAC)

		switch store.InsertInterface(iface.Name, mac) {
		case datamodel.InsertOK, datamodel.InsertDuplicate:
			seeded = append(seeded, iface.Name)
		case datamodel.InsertFail:
			errs = append(errs, fmt.Errorf("inserting interface %s (%s): conflicts with an existing entry", iface.Name, mac))
		}
	}

	return seeded, errors.Join(errs...)
}
