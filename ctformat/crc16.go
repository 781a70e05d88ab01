package ctformat

// CRC16XModem computes the CRC-16/XMODEM checksum of data: initial
// value 0x0000, polynomial 0x1021, no input or output reflection, no
// final XOR. This is a standalone bit-level implementation — none of
// the available third-party libraries expose this exact CRC variant,
// so it is hand-rolled, the same way a zmodem implementation hand-rolls
// its own protocol-specific CRC-16 rather than pulling in a generic CRC
// package.
func CRC16XModem(data []byte) uint16 {
	var crc uint16

	for _, b := range data {
		crc ^= uint16(b) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}

	return crc
}
