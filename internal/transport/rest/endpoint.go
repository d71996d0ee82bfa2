package resttr

import "fmt"

func RegionalEndpoint(service, region string) string {
	return fmt.Sprintf("https://%s.%s.oci.oraclecloud.com", service, region)
}
