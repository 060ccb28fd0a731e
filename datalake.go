package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake/datalakeerror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake/filesystem"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azdatalake/service"
)

// DataLakeClient writes into one filesystem of an HNS-enabled storage account.
type DataLakeClient struct {
	Client *filesystem.Client
}

func dataLakeServiceURL(accountName string) string {
	return fmt.Sprintf("https://%s.dfs.core.windows.net/", accountName)
}

// NewDataLakeService connects to the account's dfs endpoint with its shared key.
func NewDataLakeService(account StorageAccount) (*service.Client, error) {
	cred, err := azdatalake.NewSharedKeyCredential(account.Name, account.Key)
	if err != nil {
		return nil, err
	}

	return service.NewClientWithSharedKeyCredential(dataLakeServiceURL(account.Name), cred, nil)
}

// CreateFileSystem creates the named filesystem and returns a client rooted in it.
func CreateFileSystem(ctx context.Context, svc *service.Client, name string) (*DataLakeClient, error) {
	fsClient := svc.NewFileSystemClient(name)
	if _, err := fsClient.Create(ctx, nil); err != nil {
		return nil, fmt.Errorf("creating filesystem %s: %w", name, err)
	}

	return &DataLakeClient{Client: fsClient}, nil
}

func (c *DataLakeClient) CreateDirectory(ctx context.Context, path string) error {
	_, err := c.Client.NewDirectoryClient(path).Create(ctx, nil)
	return err
}

// CreateFile creates an empty file, replacing any file already at path.
func (c *DataLakeClient) CreateFile(ctx context.Context, path string) error {
	_, err := c.Client.NewFileClient(path).Create(ctx, nil)
	return err
}

// WriteFile uploads the content of file into the file CreateFile made. An
// empty file is left as created, since appends must carry data.
func (c *DataLakeClient) WriteFile(ctx context.Context, path string, file *os.File) error {
	info, err := file.Stat()
	if err != nil {
		return err
	}
	if info.Size() == 0 {
		return nil
	}

	return c.Client.NewFileClient(path).UploadFile(ctx, file, nil)
}

func (c *DataLakeClient) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := c.Client.NewFileClient(path).GetProperties(ctx, nil)
	if err == nil {
		return true, nil
	}
	if isNotFound(err) {
		return false, nil
	}

	return false, err
}

func isNotFound(err error) bool {
	if datalakeerror.HasCode(err, datalakeerror.PathNotFound) {
		return true
	}

	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound
}
