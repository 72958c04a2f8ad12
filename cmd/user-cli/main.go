// Command user-cli вызывает методы сервиса пользователей из командной строки.
//
//	user-cli -addr 127.0.0.1:50051 list [pn] [psize]
//	user-cli get <id>
//	user-cli get-mobile <mobile>
//	user-cli create <mobile> <password> [nick]
//	user-cli update <id> <nick> <gender> <YYYY-MM-DD>
//	user-cli check <mobile> <password>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/magabrotheeeer/user-service/internal/grpc/client"
)

var errUsage = errors.New("usage: user-cli [-addr host:port] list|get|get-mobile|create|update|check args...")

func main() {
	addr := flag.String("addr", "127.0.0.1:50051", "user-service gRPC address")
	timeout := flag.Duration("timeout", 5*time.Second, "request timeout")
	flag.Parse()

	if err := run(*addr, *timeout, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(addr string, timeout time.Duration, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	c, err := client.NewUserClient(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd, args := args[0], args[1:]
	switch cmd {
	case "list":
		pn, pSize := uint64(0), uint64(0)
		if len(args) > 0 {
			if pn, err = strconv.ParseUint(args[0], 10, 32); err != nil {
				return err
			}
		}
		if len(args) > 1 {
			if pSize, err = strconv.ParseUint(args[1], 10, 32); err != nil {
				return err
			}
		}
		resp, err := c.GetUserList(ctx, uint32(pn), uint32(pSize))
		if err != nil {
			return err
		}
		return printJSON(resp)
	case "get":
		if len(args) != 1 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		resp, err := c.GetUserByID(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(resp)
	case "get-mobile":
		if len(args) != 1 {
			return errUsage
		}
		resp, err := c.GetUserByMobile(ctx, args[0])
		if err != nil {
			return err
		}
		return printJSON(resp)
	case "create":
		if len(args) < 2 {
			return errUsage
		}
		nick := ""
		if len(args) > 2 {
			nick = args[2]
		}
		resp, err := c.CreateUser(ctx, nick, args[1], args[0])
		if err != nil {
			return err
		}
		return printJSON(resp)
	case "update":
		if len(args) != 4 {
			return errUsage
		}
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		birthday, err := time.ParseInLocation(time.DateOnly, args[3], time.Local)
		if err != nil {
			return err
		}
		return c.UpdateUser(ctx, id, args[1], args[2], birthday.Unix())
	case "check":
		if len(args) != 2 {
			return errUsage
		}
		ok, err := c.CheckPassword(ctx, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(ok)
		return nil
	default:
		return errUsage
	}
}

func printJSON(m proto.Message) error {
	out, err := protojson.MarshalOptions{Multiline: true}.Marshal(m)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
