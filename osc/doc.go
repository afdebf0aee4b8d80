// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc builds and parses OpenSoundControl packets in place, without
//per-argument allocations.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//
//Open Sound Control (OSC) is an open, transport-independent, message-based protocol developed for communication among computers,
//sound synthesizers, and other multimedia devices.
//
//Features
//
//- Builds and indexes OSC messages with the following TypeTags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//	'b' (blob)
//	't' (Timetag)
//	'h' (int64)
//	'd' (float64)
//	'c' (char)
//	'T' (true)
//	'F' (false)
//	'N' (nil)
//	'I' (impulse)
//
//- Validates received messages that also use 'S', 'r', 'm', '[' and ']'.
//
//- Builds and validates OSC bundles, including nested bundles and TimeTags.
//
//- Literal address and container matching.
//
//Memory
//
//A Message or Bundle owns one buffer (and a Message one argument table) that is either fixed when it
//is created or grows on demand. Fixed instances never allocate after construction. When something does
//not fit, the call fails with ErrNoMemory and MemoryError reports true until the next Init or Parse.
//One strategy is to add everything and check MemoryError once at the end.
//
//Getters that return a View point into the owner's buffer; the view is only valid until the owner is
//changed again.
//
//Usage
//
//Building a message:
//  m := osc.NewMessage(osc.WithBufferCapacity(256), osc.WithMaxArgs(8))
//  m.Init("/osc/address")
//  m.AddInt(111)
//  m.AddBoolean(true)
//  m.AddString("hello")
//  if m.MemoryError() {
//      // buffer too small
//  }
//  conn.Write(m.Bytes())
//
//Reading a packet:
//  err := osc.ParsePacket(data, m, func(t osc.Timetag, m *osc.Message) error {
//      if m.FullMatch(0, "/osc/address") {
//          fmt.Println(m.Int(0), m.StringArg(2))
//      }
//      return nil
//  })
package osc
