// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/pay2msg/account"
	"github.com/bitmark-inc/pay2msg/fault"
)

// structure of the message record
const (
	messageDiscStart  = 0
	messageDiscFinish = messageDiscStart + discriminatorSz

	messageSenderStart  = messageDiscFinish
	messageSenderFinish = messageSenderStart + keyByteSize

	messageRecipientStart  = messageSenderFinish
	messageRecipientFinish = messageRecipientStart + keyByteSize

	messageAmountStart  = messageRecipientFinish
	messageAmountFinish = messageAmountStart + uint64ByteSize

	messageCreatedStart  = messageAmountFinish
	messageCreatedFinish = messageCreatedStart + uint64ByteSize

	messageReadStart  = messageCreatedFinish
	messageReadFinish = messageReadStart + oneByteSize

	messageBumpStart  = messageReadFinish
	messageBumpFinish = messageBumpStart + oneByteSize

	messageContentLengthStart  = messageBumpFinish
	messageContentLengthFinish = messageContentLengthStart + uint32ByteSize

	messageContentStart = messageContentLengthFinish

	// MessageMaxSpace - bytes allocated for a message
	MessageMaxSpace = messageContentStart + MaxContentLength
)

// Message - an escrowed deposit and its content
type Message struct {
	Sender    *account.Account `json:"sender"`
	Recipient *account.Account `json:"recipient"`
	Amount    uint64           `json:"amount"`
	CreatedAt int64            `json:"createdAt"`
	Read      bool             `json:"read"`
	Bump      uint8            `json:"bump"`
	Content   []byte           `json:"content"`
}

// Pack - binary form, only as long as the content requires
func (message *Message) Pack() ([]byte, error) {
	if nil == message.Sender || account.ED25519 != message.Sender.KeyType() {
		return nil, fault.ErrInvalidOwner
	}
	if nil == message.Recipient || account.ED25519 != message.Recipient.KeyType() {
		return nil, fault.ErrInvalidOwner
	}
	if len(message.Content) > MaxContentLength {
		return nil, fault.ErrCapacityExceeded
	}

	buffer := make([]byte, messageContentStart+len(message.Content))
	copy(buffer[messageDiscStart:messageDiscFinish], messageDiscriminator)
	copy(buffer[messageSenderStart:messageSenderFinish], message.Sender.PublicKeyBytes())
	copy(buffer[messageRecipientStart:messageRecipientFinish], message.Recipient.PublicKeyBytes())
	binary.BigEndian.PutUint64(buffer[messageAmountStart:messageAmountFinish], message.Amount)
	binary.BigEndian.PutUint64(buffer[messageCreatedStart:messageCreatedFinish], uint64(message.CreatedAt))
	if message.Read {
		buffer[messageReadStart] = 1
	}
	buffer[messageBumpStart] = message.Bump
	binary.BigEndian.PutUint32(buffer[messageContentLengthStart:messageContentLengthFinish], uint32(len(message.Content)))
	copy(buffer[messageContentStart:], message.Content)

	return buffer, nil
}

// UnpackMessage - decode a message slot
func UnpackMessage(buffer []byte, testnet bool) (*Message, error) {
	if len(buffer) < messageContentStart || !hasDiscriminator(buffer, messageDiscriminator) {
		return nil, fault.ErrNotRecordPack
	}

	contentLength := int(binary.BigEndian.Uint32(buffer[messageContentLengthStart:messageContentLengthFinish]))
	if contentLength > MaxContentLength {
		return nil, fault.ErrNotRecordPack
	}
	contentFinish := messageContentStart + contentLength
	if len(buffer) < contentFinish || !isPadding(buffer[contentFinish:]) {
		return nil, fault.ErrNotRecordPack
	}

	var read bool
	switch buffer[messageReadStart] {
	case 0:
		read = false
	case 1:
		read = true
	default:
		return nil, fault.ErrNotRecordPack
	}

	sender, err := account.AccountFromPublicKey(testnet, buffer[messageSenderStart:messageSenderFinish])
	if nil != err {
		return nil, err
	}
	recipient, err := account.AccountFromPublicKey(testnet, buffer[messageRecipientStart:messageRecipientFinish])
	if nil != err {
		return nil, err
	}

	content := make([]byte, contentLength)
	copy(content, buffer[messageContentStart:contentFinish])

	message := &Message{
		Sender:    sender,
		Recipient: recipient,
		Amount:    binary.BigEndian.Uint64(buffer[messageAmountStart:messageAmountFinish]),
		CreatedAt: int64(binary.BigEndian.Uint64(buffer[messageCreatedStart:messageCreatedFinish])),
		Read:      read,
		Bump:      buffer[messageBumpStart],
		Content:   content,
	}
	return message, nil
}
